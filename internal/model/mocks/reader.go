package mocks

// Reader allows to mock any io.Reader.
type Reader struct {
	MockRead func(b []byte) (int, error)
}

// Read implements io.Reader.Read.
func (r *Reader) Read(b []byte) (int, error) {
	return r.MockRead(b)
}
