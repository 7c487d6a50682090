package modelspec

import (
	"bytes"
	"encoding/gob"
)

// Wire form for gob snapshots of merged models. The internal maps/slices are
// unexported, so encoding goes through an explicit DTO.

type stanzaDTO struct {
	Name   string
	Order  []string
	Values map[string]string
}

type specDTO struct {
	Mode    Mode
	Stanzas []stanzaDTO
}

// GobEncode implements gob.GobEncoder.
func (s *Specification) GobEncode() ([]byte, error) {
	dto := specDTO{Mode: s.mode}
	for _, name := range s.order {
		st := s.stanzas[name]
		dto.Stanzas = append(dto.Stanzas, stanzaDTO{
			Name:   st.name,
			Order:  st.Keys(),
			Values: st.vals,
		})
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(dto); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (s *Specification) GobDecode(data []byte) error {
	var dto specDTO
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&dto); err != nil {
		return err
	}
	*s = *New(dto.Mode)
	for _, st := range dto.Stanzas {
		target := s.EnsureStanza(st.Name)
		for _, key := range st.Order {
			target.Set(key, st.Values[key])
		}
	}
	return nil
}
