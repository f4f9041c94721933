package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment status values accepted in [Pagamento.Status].
const (
	PagamentoPago    = "Pago"
	PagamentoParcial = "Parcial"
	PagamentoNaoPago = "Não Pago"
)

// DefaultHistoricoEntry is the synthetic first history line written when a
// Processo is created without any history of its own.
const DefaultHistoricoEntry = "Processo criado no sistema."

// HistoricoEntry is a single free-text status note on a Processo.
// The historico array is ordered newest-first: new entries are always
// inserted at the head.
type HistoricoEntry struct {
	Data      time.Time `json:"data"`
	Descricao string    `json:"descricao"`
}

// Parcela is a single installment inside a payment plan.
type Parcela struct {
	Numero int        `json:"numero"`
	Valor  float64    `json:"valor"`
	Data   *time.Time `json:"data,omitempty"`
	Pago   bool       `json:"pago"`
}

// Pagamento summarizes the payment state of a case.
// Stored as a single jsonb document alongside the case row.
type Pagamento struct {
	Status        string     `json:"status"`
	TotalPago     float64    `json:"totalPago"`
	DataPagamento *time.Time `json:"dataPagamento,omitempty"`
	Parcelas      []Parcela  `json:"parcelas,omitempty"`
}

// Processo is a legal case record, the primary entity of the kanban board.
// Fase is the kanban column the case currently occupies.
type Processo struct {
	ID              uuid.UUID        `json:"id"`
	NomeCliente     string           `json:"nomeCliente"`
	Contato         string           `json:"contato,omitempty"`
	Indicacao       string           `json:"indicacao,omitempty"`
	PrimeiroContato *time.Time       `json:"primeiroContato,omitempty"`
	Parceria        string           `json:"parceria,omitempty"`
	Porcentagem     string           `json:"porcentagem,omitempty"`
	ValorCausa      float64          `json:"valorCausa"`
	Fase            string           `json:"fase"`
	NumProcesso     string           `json:"numProcesso,omitempty"`
	Vara            string           `json:"vara,omitempty"`
	Tipo            string           `json:"tipo,omitempty"`
	Prazo           *time.Time       `json:"prazo,omitempty"`
	Audiencia       *time.Time       `json:"audiencia,omitempty"`
	UltimoContato   *time.Time       `json:"ultimoContato,omitempty"`
	StatusPrioridade string          `json:"statusPrioridade,omitempty"`
	ProximoPasso    string           `json:"proximoPasso,omitempty"`
	Observacao      string           `json:"observacao,omitempty"`
	Pagamento       *Pagamento       `json:"pagamento,omitempty"`
	Historico       []HistoricoEntry `json:"historico"`
}

// TableName returns the name of the database table
// associated with the Processo model.
func (p Processo) TableName() string {
	return "processos"
}

// Validate checks the required fields and enum constraints of a Processo and
// returns one [FieldError] per violation. An empty slice means the record is
// valid.
func (p Processo) Validate() []FieldError {
	var errs []FieldError

	if p.NomeCliente == "" {
		errs = append(errs, FieldError{Field: "nomeCliente", Message: "nome do cliente é obrigatório"})
	}
	if p.Fase == "" {
		errs = append(errs, FieldError{Field: "fase", Message: "fase é obrigatória"})
	}
	if p.Pagamento != nil && !validPagamentoStatus(p.Pagamento.Status) {
		errs = append(errs, FieldError{Field: "pagamento.status", Message: "status de pagamento inválido"})
	}
	for _, h := range p.Historico {
		if h.Descricao == "" {
			errs = append(errs, FieldError{Field: "historico.descricao", Message: "descrição do histórico é obrigatória"})
			break
		}
	}

	return errs
}

func validPagamentoStatus(status string) bool {
	switch status {
	case "", PagamentoPago, PagamentoParcial, PagamentoNaoPago:
		return true
	}
	return false
}

// ProcessoUpdate carries a partial update of a Processo. Only non-nil fields
// overwrite the stored values; nil fields are left untouched.
type ProcessoUpdate struct {
	NomeCliente      *string           `json:"nomeCliente,omitempty"`
	Contato          *string           `json:"contato,omitempty"`
	Indicacao        *string           `json:"indicacao,omitempty"`
	PrimeiroContato  *time.Time        `json:"primeiroContato,omitempty"`
	Parceria         *string           `json:"parceria,omitempty"`
	Porcentagem      *string           `json:"porcentagem,omitempty"`
	ValorCausa       *float64          `json:"valorCausa,omitempty"`
	Fase             *string           `json:"fase,omitempty"`
	NumProcesso      *string           `json:"numProcesso,omitempty"`
	Vara             *string           `json:"vara,omitempty"`
	Tipo             *string           `json:"tipo,omitempty"`
	Prazo            *time.Time        `json:"prazo,omitempty"`
	Audiencia        *time.Time        `json:"audiencia,omitempty"`
	UltimoContato    *time.Time        `json:"ultimoContato,omitempty"`
	StatusPrioridade *string           `json:"statusPrioridade,omitempty"`
	ProximoPasso     *string           `json:"proximoPasso,omitempty"`
	Observacao       *string           `json:"observacao,omitempty"`
	Pagamento        *Pagamento        `json:"pagamento,omitempty"`
	Historico        *[]HistoricoEntry `json:"historico,omitempty"`
}

// Validate checks the supplied fields of a partial update. Required fields may
// be absent, but if present they must not be emptied out.
func (u ProcessoUpdate) Validate() []FieldError {
	var errs []FieldError

	if u.NomeCliente != nil && *u.NomeCliente == "" {
		errs = append(errs, FieldError{Field: "nomeCliente", Message: "nome do cliente é obrigatório"})
	}
	if u.Fase != nil && *u.Fase == "" {
		errs = append(errs, FieldError{Field: "fase", Message: "fase é obrigatória"})
	}
	if u.Pagamento != nil && !validPagamentoStatus(u.Pagamento.Status) {
		errs = append(errs, FieldError{Field: "pagamento.status", Message: "status de pagamento inválido"})
	}

	return errs
}
