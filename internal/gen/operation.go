package gen

//go:generate go tool stringer -type=Operation -linecomment -output=operation_string.go

// Operation is the binary-output command a line drives.
type Operation int

const (
	OperTrip  Operation = iota // operTrip
	OperClose                  // operClose
)

// Next returns the operation of the following line.
func (o Operation) Next() Operation {
	if o == OperTrip {
		return OperClose
	}

	return OperTrip
}
