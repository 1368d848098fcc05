package model

// ScanWindow is the block range of one historical scan.
type ScanWindow struct {
	FromBlock uint64
	ToBlock   uint64
	ChunkSize uint64
}

// BlockRange is an inclusive range of block numbers.
type BlockRange struct {
	From uint64
	To   uint64
}

// Blocks returns the number of blocks covered by the range.
func (r BlockRange) Blocks() uint64 {
	return r.To - r.From + 1
}

// Chunks partitions the window into contiguous, non-overlapping ranges of
// ChunkSize blocks; the last range ends at ToBlock.
func (w ScanWindow) Chunks() []BlockRange {
	if w.ChunkSize == 0 || w.FromBlock > w.ToBlock {
		return nil
	}
	chunks := make([]BlockRange, 0, (w.ToBlock-w.FromBlock)/w.ChunkSize+1)
	for from := w.FromBlock; ; {
		to := w.ToBlock
		if w.ToBlock-from >= w.ChunkSize {
			to = from + w.ChunkSize - 1
		}
		chunks = append(chunks, BlockRange{From: from, To: to})
		if to == w.ToBlock {
			return chunks
		}
		from = to + 1
	}
}

// Gap is a chunk abandoned after its fetch attempts failed.
type Gap struct {
	BlockRange
	Attempts int
	Err      error
}

// ScanReport summarises a finished scan.
type ScanReport struct {
	Window       ScanWindow
	Chunks       int
	Events       int
	DecodeErrors int
	Retries      int
	Gaps         []Gap
}

// Complete reports whether every chunk of the window was fetched.
func (r ScanReport) Complete() bool {
	return len(r.Gaps) == 0
}

// SkippedBlocks returns the number of blocks inside abandoned chunks.
func (r ScanReport) SkippedBlocks() uint64 {
	var total uint64
	for _, g := range r.Gaps {
		total += g.Blocks()
	}
	return total
}
