package validation

// Errors maps a field name to the human-readable messages recorded against
// it. A nil or empty map means the payload passed.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Merge(other Errors) {
	for field, messages := range other {
		e[field] = append(e[field], messages...)
	}
}

func (e Errors) Any() bool {
	return len(e) > 0
}
