package workload

// PayloadCapacity is the reserved payload size of every Request, one million
// bytes. Reserving it up front is the entire workload: each Request costs one
// large heap allocation without ever carrying content.
const PayloadCapacity = 1_000_000

// Request is a synthetic unit of work: an integer identifier and a large
// pre-reserved, empty payload buffer.
type Request struct {
	Num     int64
	Payload []byte
}

// NewRequest allocates a Request whose payload has room for PayloadCapacity
// bytes but contains none.
func NewRequest(num int64) *Request {
	return &Request{
		Num:     num,
		Payload: make([]byte, 0, PayloadCapacity),
	}
}
