package health

import "context"

// CorpusPinger checks corpus store availability.
type CorpusPinger interface {
	Ping(ctx context.Context) error
}

// IndexReader reports whether a serving index exists.
type IndexReader interface {
	Ready() bool
}
