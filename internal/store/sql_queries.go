package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/martancouto/juriskanban/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	countUsers = `SELECT count(*) FROM users;`

	updateUserPassword = `UPDATE users
    SET password_hash = $2
    WHERE user_id = $1;`
)

// processoColumns is the canonical column list of the processos table, in
// the order every processo scan expects.
const processoColumns = `id, nome_cliente, contato, indicacao, primeiro_contato, parceria, porcentagem,
    valor_causa, fase, num_processo, vara, tipo, prazo, audiencia, ultimo_contato,
    status_prioridade, proximo_passo, observacao, pagamento, historico`

const (
	getAllProcessos = `SELECT ` + processoColumns + `
    FROM processos
    ORDER BY nome_cliente ASC;`

	getProcessoByID = `SELECT ` + processoColumns + `
    FROM processos
    WHERE id = $1;`

	getProcessosByIDs = `SELECT ` + processoColumns + `
    FROM processos
    WHERE id = ANY($1::uuid[]);`

	createProcesso = `INSERT INTO processos (` + processoColumns + `)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
    RETURNING ` + processoColumns + `;`

	deleteProcesso = `DELETE FROM processos WHERE id = $1;`

	// appendHistorico prepends one history entry and overwrites the
	// observacao summary in a single atomic statement, the relational
	// equivalent of Mongo's $push with $position: 0.
	appendHistorico = `UPDATE processos
    SET historico = jsonb_build_array(jsonb_build_object('data', now(), 'descricao', $2::text)) || historico,
        observacao = $2
    WHERE id = $1
    RETURNING ` + processoColumns + `;`
)

// eventoColumns is the canonical column list of the eventos table, in the
// order every evento scan expects.
const eventoColumns = `id, titulo, descricao, tipo, data_inicio, data_fim, processo_id, local, notas,
    concluido, criado_em, atualizado_em`

const (
	getAllEventos = `SELECT ` + eventoColumns + `
    FROM eventos
    ORDER BY data_inicio ASC;`

	getEventoByID = `SELECT ` + eventoColumns + `
    FROM eventos
    WHERE id = $1;`

	getEventosByProcesso = `SELECT ` + eventoColumns + `
    FROM eventos
    WHERE processo_id = $1
    ORDER BY data_inicio ASC;`

	createEvento = `INSERT INTO eventos (id, titulo, descricao, tipo, data_inicio, data_fim, processo_id, local, notas, concluido)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + eventoColumns + `;`

	deleteEvento = `DELETE FROM eventos WHERE id = $1;`
)

// uuidArrayLiteral renders ids as a Postgres array literal. database/sql has
// no uuid array support, the text form with an explicit cast does fine.
func uuidArrayLiteral(ids []uuid.UUID) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}

	return "{" + strings.Join(strs, ",") + "}"
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProcesso reads one processos row, unmarshalling the jsonb pagamento
// and historico documents into their typed forms.
func scanProcesso(row rowScanner) (models.Processo, error) {
	var p models.Processo
	var pagamento, historico []byte

	err := row.Scan(
		&p.ID, &p.NomeCliente, &p.Contato, &p.Indicacao, &p.PrimeiroContato, &p.Parceria, &p.Porcentagem,
		&p.ValorCausa, &p.Fase, &p.NumProcesso, &p.Vara, &p.Tipo, &p.Prazo, &p.Audiencia, &p.UltimoContato,
		&p.StatusPrioridade, &p.ProximoPasso, &p.Observacao, &pagamento, &historico,
	)
	if err != nil {
		return models.Processo{}, err
	}

	if len(pagamento) > 0 {
		p.Pagamento = &models.Pagamento{}
		if err := json.Unmarshal(pagamento, p.Pagamento); err != nil {
			return models.Processo{}, fmt.Errorf("%w: pagamento", ErrScanningRow)
		}
	}
	if len(historico) > 0 {
		if err := json.Unmarshal(historico, &p.Historico); err != nil {
			return models.Processo{}, fmt.Errorf("%w: historico", ErrScanningRow)
		}
	}

	return p, nil
}

// processoInsertArgs flattens a Processo into the argument list expected by
// [createProcesso]. Pagamento and Historico are marshalled to jsonb; a nil
// Pagamento is stored as SQL NULL.
func processoInsertArgs(p models.Processo) ([]any, error) {
	var pagamento any
	if p.Pagamento != nil {
		b, err := json.Marshal(p.Pagamento)
		if err != nil {
			return nil, fmt.Errorf("%w: marshalling pagamento", ErrBuildingSQLQuery)
		}
		pagamento = b
	}

	historico, err := json.Marshal(p.Historico)
	if err != nil {
		return nil, fmt.Errorf("%w: marshalling historico", ErrBuildingSQLQuery)
	}

	return []any{
		p.ID, p.NomeCliente, p.Contato, p.Indicacao, p.PrimeiroContato, p.Parceria, p.Porcentagem,
		p.ValorCausa, p.Fase, p.NumProcesso, p.Vara, p.Tipo, p.Prazo, p.Audiencia, p.UltimoContato,
		p.StatusPrioridade, p.ProximoPasso, p.Observacao, pagamento, historico,
	}, nil
}

// scanEvento reads one eventos row. A NULL processo_id leaves the reference
// unset.
func scanEvento(row rowScanner) (models.Evento, error) {
	var e models.Evento
	var processoID uuid.NullUUID

	err := row.Scan(
		&e.ID, &e.Titulo, &e.Descricao, &e.Tipo, &e.DataInicio, &e.DataFim, &processoID, &e.Local, &e.Notas,
		&e.Concluido, &e.CriadoEm, &e.AtualizadoEm,
	)
	if err != nil {
		return models.Evento{}, err
	}

	if processoID.Valid {
		id := processoID.UUID
		e.ProcessoID = &id
	}

	return e, nil
}
