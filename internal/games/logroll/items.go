package logroll

// defaultItemSize is used for kinds that are not configured.
const defaultItemSize = 16

// Kind returns the configured kind with the given name. Unknown names
// get multiplier 1.
func (s *Sim) Kind(name string) ItemKind {
	for _, k := range s.kinds {
		if k.Name == name {
			if k.Multiplier <= 0 {
				k.Multiplier = 1
			}
			return k
		}
	}
	return ItemKind{Name: name, Multiplier: 1, Width: defaultItemSize, Height: defaultItemSize}
}

// Carried returns the sum of multipliers of the active items.
func (s *Sim) Carried() int {
	total := 0
	for _, it := range s.items {
		total += it.Kind.Multiplier
	}
	return total
}

// updateItems spawns an item on the drop cadence and discards items that
// fell out of the playfield.
func (s *Sim) updateItems() {
	st := &s.state
	if st.Walked-st.LastItemDropAt >= s.cfg.Items.DropCadence {
		s.dropItem(s.randomKind())
		st.LastItemDropAt = st.Walked
	}

	limit := s.grid.ScreenHeight() + s.cfg.Items.OutOfBoundsMargin
	live := s.items[:0]
	for _, it := range s.items {
		if it.Body.Y() <= limit {
			live = append(live, it)
			continue
		}
		penalty := it.Kind.Multiplier * s.cfg.Items.PenaltyFactor
		st.Score -= penalty
		it.Body.Destroy()
		s.pub.Publish(ItemDropped{
			Kind:       it.Kind.Name,
			Multiplier: it.Kind.Multiplier,
			Penalty:    penalty,
		})
	}
	for i := len(live); i < len(s.items); i++ {
		s.items[i] = Item{}
	}
	s.items = live
}

// randomKind picks a configured kind name.
func (s *Sim) randomKind() string {
	if len(s.kinds) == 0 {
		return ""
	}
	return s.kinds[s.rng.Intn(len(s.kinds))].Name
}

// dropItem spawns an item of the named kind at the top of the playfield,
// somewhere above the log.
func (s *Sim) dropItem(name string) {
	if s.spawner == nil {
		return
	}
	kind := s.Kind(name)
	w := s.log.Width()
	x := s.log.X() - w/2 + s.rng.Float64()*w
	body := s.spawner.SpawnItem(kind, x, 0)
	if body == nil {
		return
	}
	s.items = append(s.items, Item{Kind: kind, Body: body})
}

// applyBonus pays out the carried items and moves the bonus watermark.
func (s *Sim) applyBonus() {
	st := &s.state
	st.LastBonusAt = st.LastScoreAt

	carried := s.Carried()
	amount := s.cfg.Scoring.BonusMultiplier * carried
	if amount <= 0 {
		return
	}
	st.Score += amount
	s.pub.Publish(BonusApplied{Amount: amount, Carried: carried})
}
