package models

import (
	"time"

	"github.com/google/uuid"
)

// Event type values accepted in [Evento.Tipo].
const (
	EventoAudiencia = "Audiência"
	EventoReuniao   = "Reunião"
	EventoPrazo     = "Prazo"
	EventoOutro     = "Outro"
)

// Evento is a calendar entry, optionally linked to a Processo by a weak
// reference. Deleting the referenced Processo does not delete the Evento;
// reads simply stop expanding the reference.
type Evento struct {
	ID           uuid.UUID  `json:"id"`
	Titulo       string     `json:"titulo"`
	Descricao    string     `json:"descricao,omitempty"`
	Tipo         string     `json:"tipo"`
	DataInicio   time.Time  `json:"dataInicio"`
	DataFim      *time.Time `json:"dataFim,omitempty"`
	ProcessoID   *uuid.UUID `json:"processoId,omitempty"`
	Local        string     `json:"local,omitempty"`
	Notas        string     `json:"notas,omitempty"`
	Concluido    bool       `json:"concluido"`
	CriadoEm     time.Time  `json:"criadoEm"`
	AtualizadoEm time.Time  `json:"atualizadoEm"`

	// Processo is the read-side expansion of ProcessoID. It is populated on
	// reads when the referenced case still exists and is never persisted.
	Processo *Processo `json:"processo,omitempty"`
}

// TableName returns the name of the database table
// associated with the Evento model.
func (e Evento) TableName() string {
	return "eventos"
}

// Validate checks the required fields and the tipo enum of an Evento.
func (e Evento) Validate() []FieldError {
	var errs []FieldError

	if e.Titulo == "" {
		errs = append(errs, FieldError{Field: "titulo", Message: "título do evento é obrigatório"})
	}
	if e.DataInicio.IsZero() {
		errs = append(errs, FieldError{Field: "dataInicio", Message: "data de início é obrigatória"})
	}
	if !validEventoTipo(e.Tipo) {
		errs = append(errs, FieldError{Field: "tipo", Message: "tipo de evento inválido"})
	}

	return errs
}

func validEventoTipo(tipo string) bool {
	switch tipo {
	case "", EventoAudiencia, EventoReuniao, EventoPrazo, EventoOutro:
		return true
	}
	return false
}

// EventoUpdate carries a partial update of an Evento. Only non-nil fields
// overwrite the stored values. AtualizadoEm is refreshed by the store on
// every update regardless of the supplied fields.
type EventoUpdate struct {
	Titulo     *string    `json:"titulo,omitempty"`
	Descricao  *string    `json:"descricao,omitempty"`
	Tipo       *string    `json:"tipo,omitempty"`
	DataInicio *time.Time `json:"dataInicio,omitempty"`
	DataFim    *time.Time `json:"dataFim,omitempty"`
	ProcessoID *uuid.UUID `json:"processoId,omitempty"`
	Local      *string    `json:"local,omitempty"`
	Notas      *string    `json:"notas,omitempty"`
	Concluido  *bool      `json:"concluido,omitempty"`
}

// Validate checks the supplied fields of a partial update.
func (u EventoUpdate) Validate() []FieldError {
	var errs []FieldError

	if u.Titulo != nil && *u.Titulo == "" {
		errs = append(errs, FieldError{Field: "titulo", Message: "título do evento é obrigatório"})
	}
	if u.DataInicio != nil && u.DataInicio.IsZero() {
		errs = append(errs, FieldError{Field: "dataInicio", Message: "data de início é obrigatória"})
	}
	if u.Tipo != nil && !validEventoTipo(*u.Tipo) {
		errs = append(errs, FieldError{Field: "tipo", Message: "tipo de evento inválido"})
	}

	return errs
}
