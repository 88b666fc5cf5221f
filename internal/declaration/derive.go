package declaration

import "net"

// Derive computes the record set implied by the declaration.
//
// For each server index i in [0, ServerCount) two records are emitted,
// both targeting Addresses[i]: one at the zone apex (round-robin entry
// point) and one at the "server{i}" label (direct per-server name). The
// output order is stable: all apex records by index, then all labeled
// records by index.
//
// Derive assumes a validated declaration; unparseable addresses map to
// type "A".
func (d *Declaration) Derive() []Record {
	records := make([]Record, 0, 2*d.ServerCount)
	for i := 0; i < d.ServerCount; i++ {
		records = append(records, Record{
			Host:  "",
			Type:  addressType(d.Addresses[i]),
			Value: d.Addresses[i],
			TTL:   d.TTL,
		})
	}
	for i := 0; i < d.ServerCount; i++ {
		records = append(records, Record{
			Host:  ServerLabel(i),
			Type:  addressType(d.Addresses[i]),
			Value: d.Addresses[i],
			TTL:   d.TTL,
		})
	}
	return records
}

func addressType(addr string) string {
	ip := net.ParseIP(addr)
	if ip != nil && ip.To4() == nil {
		return "AAAA"
	}
	return "A"
}
