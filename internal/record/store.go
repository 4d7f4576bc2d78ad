package record

// Store is the durable key-value record store both domain stores persist
// through. Implementations hold one opaque blob per key.
//
// Load returns found=false (and no error) when nothing has been saved under
// the key. Save overwrites any previous record for the key.
type Store interface {
	Load(key string) (data []byte, found bool, err error)
	Save(key string, data []byte) error
	Close() error
}
