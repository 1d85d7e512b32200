package util

// Palette is the fixed set of colours process ids are hashed into.
var Palette = []string{"#10b981", "#f59e0b", "#ec4899", "#8b5cf6", "#06b6d4", "#f97316", "#6366f1", "#14b8a6"}

// ColorFor maps a process id to a palette entry. The same id always gets the
// same colour.
func ColorFor(pid string) string {
	var hash int32
	for _, r := range pid {
		hash = int32(r) + ((hash << 5) - hash)
	}
	idx := int(hash) % len(Palette)
	if idx < 0 {
		idx = -idx
	}
	return Palette[idx]
}
