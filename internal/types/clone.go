package types

// cloneItems copies an item slice, preserving nil-ness so cloned states
// marshal exactly like their originals
func cloneItems(in []BudgetItem) []BudgetItem {
	if in == nil {
		return nil
	}
	out := make([]BudgetItem, len(in))
	copy(out, in)
	return out
}

// Clone returns a deep copy of the character, including its inventory
func (c GameCharacter) Clone() GameCharacter {
	out := c
	out.Inventory = cloneItems(c.Inventory)
	return out
}

// Clone returns a deep copy of the store, including its item menu
func (s Store) Clone() Store {
	out := s
	out.Items = cloneItems(s.Items)
	return out
}

// Clone returns a deep copy of the shopping-game sub-state
func (sg ShoppingGameState) Clone() ShoppingGameState {
	out := sg
	if sg.Characters != nil {
		out.Characters = make([]GameCharacter, len(sg.Characters))
		for i, c := range sg.Characters {
			out.Characters[i] = c.Clone()
		}
	}
	if sg.Stores != nil {
		out.Stores = make([]Store, len(sg.Stores))
		for i, s := range sg.Stores {
			out.Stores[i] = s.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the progress record
func (p Progress) Clone() Progress {
	out := p
	if p.BadgesEarned != nil {
		out.BadgesEarned = make([]string, len(p.BadgesEarned))
		copy(out.BadgesEarned, p.BadgesEarned)
	}
	return out
}

// Clone returns a deep copy of the budget sub-state
func (b Budget) Clone() Budget {
	out := b
	out.Cart = cloneItems(b.Cart)
	return out
}

// Clone returns a deep copy of the whole application state. Reducer
// transitions operate on clones so a returned state never shares backing
// arrays with its predecessor.
func (s AppState) Clone() AppState {
	out := s
	if s.SelectedAvatar != nil {
		av := *s.SelectedAvatar
		out.SelectedAvatar = &av
	}
	out.Progress = s.Progress.Clone()
	out.Budget = s.Budget.Clone()
	out.ShoppingGame = s.ShoppingGame.Clone()
	return out
}
