package vehicle

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
)

// Fingerprint builds a deterministic 32-bit id from kind and identity values.
// Mileage and status do not take part, so the id is stable for a vehicle.
func Fingerprint(v Vehicle) uint32 {
	info := v.Info()
	key := strings.Join([]string{
		string(v.Kind()),
		strings.ToLower(info.Brand),
		strings.ToLower(info.Model),
		strconv.Itoa(info.Year),
	}, "|")

	return hash32(key)
}

// hash32 folds a 64-bit xxhash into 32 bits.
func hash32(s string) uint32 {
	var buf [8]byte
	h := xxhash.Sum64String(s)

	binary.LittleEndian.PutUint64(buf[:], h)
	lo := binary.LittleEndian.Uint32(buf[:4])
	hi := binary.LittleEndian.Uint32(buf[4:])

	return lo ^ hi
}
