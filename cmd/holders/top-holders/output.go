package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goodnatureofminers/blockinsight7000-holders/internal/holders/model"
)

func printTokenInfo(w io.Writer, info model.TokenMetadata) {
	fmt.Fprintf(w, "Token:        %s (%s)\n", info.Name, info.Symbol)
	fmt.Fprintf(w, "Address:      %s\n", info.Address.Hex())
	fmt.Fprintf(w, "Decimals:     %d\n", info.Decimals)
	fmt.Fprintf(w, "Total supply: %.2f %s\n\n", info.TotalSupply, info.Symbol)
}

func printBalances(w io.Writer, symbol string, results []model.BalanceResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT\tBALANCE")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\n", r.Account.Hex(), r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.6f %s\n", r.Account.Hex(), r.Balance, symbol)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
}

func printHolders(w io.Writer, symbol string, holders []model.HolderActivity, withActivity bool) {
	if len(holders) == 0 {
		fmt.Fprintln(w, "No holders found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if withActivity {
		fmt.Fprintln(tw, "RANK\tACCOUNT\tBALANCE\tLAST ACTIVITY")
	} else {
		fmt.Fprintln(tw, "RANK\tACCOUNT\tBALANCE")
	}
	for i, h := range holders {
		if withActivity {
			fmt.Fprintf(tw, "%d\t%s\t%.2f %s\t%s\n", i+1, h.Account.Hex(), h.Balance, symbol, h.Activity)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%.2f %s\n", i+1, h.Account.Hex(), h.Balance, symbol)
	}
	_ = tw.Flush()
}

func printReport(w io.Writer, report model.ScanReport) {
	fmt.Fprintf(w, "\nScanned blocks %d-%d in %d chunks: %d events, %d undecodable, %d retries\n",
		report.Window.FromBlock, report.Window.ToBlock, report.Chunks, report.Events, report.DecodeErrors, report.Retries)
	if report.Complete() {
		return
	}
	fmt.Fprintf(w, "WARNING: %d chunks (%d blocks) could not be fetched, balances may be inaccurate:\n",
		len(report.Gaps), report.SkippedBlocks())
	for _, g := range report.Gaps {
		fmt.Fprintf(w, "  blocks %d-%d after %d attempts: %v\n", g.From, g.To, g.Attempts, g.Err)
	}
}
