package ports

// ValueTransformer is applied to each newly built entity value at
// snapshot-build time, for side-effecting normalization. Implementations
// must not change the value's identity.
//
//go:generate go run go.uber.org/mock/mockgen -source=transformer.go -destination=mocks/mock_transformer.go -package=mocks
type ValueTransformer interface {
	Transform(value any)
}
