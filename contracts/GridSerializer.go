package contracts

type GridSerializer interface {
	Marshal(snapshot GridSnapshot) ([]byte, error)
	Unmarshal(data []byte) (GridSnapshot, error)
}
