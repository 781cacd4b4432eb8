package generators

type Content struct {
	Role  Role
	Parts []Part
}

func (c Content) Merge(c2 *Content) (*Content, bool) {
	if c.Role != c2.Role {
		// different role
		return nil, false
	}

	var parts []Part
	mergePart := func(part Part) (merge bool) {
		if len(parts) == 0 {
			return false
		}
		prev := parts[len(parts)-1]
		if prev, ok := prev.(Text); ok {
			if text, ok := part.(Text); ok {
				parts[len(parts)-1] = prev + text
				return true
			}
		}
		return false
	}

	for _, part := range c.Parts {
		if !mergePart(part) {
			parts = append(parts, part)
		}
	}
	for _, part := range c2.Parts {
		if !mergePart(part) {
			parts = append(parts, part)
		}
	}

	return &Content{
		Role:  c.Role,
		Parts: parts,
	}, true
}

// TextOf concatenates the text parts of a content.
func TextOf(content *Content) string {
	var ret string
	for _, part := range content.Parts {
		if text, ok := part.(Text); ok {
			ret += string(text)
		}
	}
	return ret
}
