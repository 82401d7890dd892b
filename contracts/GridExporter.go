package contracts

import "io"

type GridExporter interface {
	Export(snapshot GridSnapshot, w io.Writer) error
}
