package network

import (
	"bytes"
	"encoding/gob"
)

// Wire form for gob snapshots of merged models.

type fluxDTO struct {
	Order []string
	Eqs   map[string]string
}

type entityDTO struct {
	Name        string
	Description string
	Initial     float64
	Influx      fluxDTO
	Outflux     fluxDTO
}

type tableDTO struct {
	Entities []entityDTO
}

func toFluxDTO(m *FluxMap) fluxDTO {
	return fluxDTO{Order: m.IDs(), Eqs: m.eqs}
}

func fromFluxDTO(d fluxDTO) *FluxMap {
	m := NewFluxMap()
	for _, id := range d.Order {
		m.Set(id, d.Eqs[id])
	}
	return m
}

// GobEncode implements gob.GobEncoder.
func (t *EntityTable) GobEncode() ([]byte, error) {
	var dto tableDTO
	for _, name := range t.order {
		e := t.byName[name]
		dto.Entities = append(dto.Entities, entityDTO{
			Name:        e.Name,
			Description: e.Description,
			Initial:     e.Initial,
			Influx:      toFluxDTO(e.Influx),
			Outflux:     toFluxDTO(e.Outflux),
		})
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(dto); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (t *EntityTable) GobDecode(data []byte) error {
	var dto tableDTO
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&dto); err != nil {
		return err
	}
	*t = *NewEntityTable()
	for _, d := range dto.Entities {
		t.Add(&Entity{
			Name:        d.Name,
			Description: d.Description,
			Initial:     d.Initial,
			Influx:      fromFluxDTO(d.Influx),
			Outflux:     fromFluxDTO(d.Outflux),
		})
	}
	return nil
}
