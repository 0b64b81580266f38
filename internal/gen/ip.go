package gen

import (
	"encoding/binary"
	"math/rand"
	"net"
)

// randomIP returns a random IPv4 address inside ipnet, skipping the
// network and broadcast addresses.
func randomIP(rng *rand.Rand, ipnet *net.IPNet) string {
	ip4 := ipnet.IP.To4()
	if ip4 == nil {
		return ipnet.IP.String()
	}

	ones, bits := ipnet.Mask.Size()
	size := uint64(1) << uint(bits-ones)
	if size <= 2 {
		return ip4.String()
	}

	base := binary.BigEndian.Uint32(ip4)
	host := uint32(1 + rng.Int63n(int64(size-2)))

	var out [4]byte
	binary.BigEndian.PutUint32(out[:], base+host)
	return net.IP(out[:]).String()
}
