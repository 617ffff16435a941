package robinhood

type Stats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32

	// Longest and average displacement of live entries, 1 meaning home slot.
	MaxProbeLength  int
	MeanProbeLength float32

	// Number of rebuilds (grow, shrink or compaction) since creation or Clear.
	Rebuilds int
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   len(t.slots),
		Tombstones: t.tombstones,
		Rebuilds:   t.rebuilds,
	}

	if s.Capacity > 0 {
		s.TombstonesCapacityRatio = float32(s.Tombstones) / float32(s.Capacity)
	}
	if s.Size > 0 {
		s.TombstonesSizeRatio = float32(s.Tombstones) / float32(s.Size)
	}

	var total int
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}

		psl := int(t.slots[i].psl)
		total += psl
		s.MaxProbeLength = max(s.MaxProbeLength, psl)
	}

	if s.Size > 0 {
		s.MeanProbeLength = float32(total) / float32(s.Size)
	}

	return s
}
