package booking

// SearchByExpertise lists every available slot of every practitioner holding area, once per
// treatment they offer in that area. A practitioner with two such treatments yields each slot twice.
func (e *Engine) SearchByExpertise(area string) []SlotOffer {
	e.mu.Lock()
	defer e.mu.Unlock()

	var offers []SlotOffer
	for _, p := range e.practitioners.ByExpertise(area) {
		offers = append(offers, offersFor(p, func(t Treatment) bool {
			return t.ExpertiseArea == area
		})...)
	}
	return offers
}

// SearchByPractitioner lists every (treatment, available slot) pair of the practitioner whose
// full name matches case-insensitively. An unknown name yields no rows.
func (e *Engine) SearchByPractitioner(name string) []SlotOffer {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.practitioners.ByNameCI(name)
	if !ok {
		return nil
	}
	return offersFor(p, func(Treatment) bool { return true })
}

func offersFor(p *Physiotherapist, keep func(Treatment) bool) []SlotOffer {
	var offers []SlotOffer
	days := p.Timetable()
	for _, t := range p.treatments {
		if !keep(t) {
			continue
		}
		for _, day := range days {
			for _, s := range day.Slots {
				if s.available {
					offers = append(offers, SlotOffer{Practitioner: p, Treatment: t, Slot: s, DateKey: day.DateKey})
				}
			}
		}
	}
	return offers
}
