package ports

// WarningSink receives non-fatal diagnostics from a merge, e.g. sparse
// array coercion. Warnings never alter control flow.
//
//go:generate go run go.uber.org/mock/mockgen -source=warnings.go -destination=mocks/mock_warnings.go -package=mocks
type WarningSink interface {
	Warn(msg string, detail map[string]any)
}
