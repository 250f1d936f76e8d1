package users

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// BatchItem reports the outcome of one candidate within a bulk ingest.
// On success Usuario is populated; on failure Error carries the reason.
type BatchItem struct {
	Index      int    `json:"indice"`
	DocumentID string `json:"documento_identidad,omitempty"`
	Usuario    *User  `json:"usuario,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BatchReport summarizes a bulk ingest: ordered per-item outcomes plus
// aggregate counts.
type BatchReport struct {
	Total     int         `json:"total_procesados"`
	Succeeded int         `json:"registrados"`
	Failed    int         `json:"con_errores"`
	Items     []BatchItem `json:"resultados"`
}

var csvRequiredColumns = []string{"nombre", "email", "documento_identidad", "fecha_nacimiento"}

// Ingest registers each candidate independently with the same validation and
// duplicate checks as Create. A failed candidate is recorded and skipped;
// no failure aborts the batch.
func (r *repo) Ingest(ctx context.Context, cmds []CreateCommand) *BatchReport {
	report := &BatchReport{
		Total: len(cmds),
		Items: make([]BatchItem, 0, len(cmds)),
	}

	for i, cmd := range cmds {
		item := BatchItem{
			Index:      i,
			DocumentID: strings.ToUpper(cmd.DocumentID),
		}

		u, err := r.Create(ctx, cmd)
		if err != nil {
			item.Error = err.Error()
			report.Failed++
		} else {
			item.Usuario = u
			report.Succeeded++
		}

		report.Items = append(report.Items, item)
	}

	r.logger.Info(
		"carga masiva completada",
		"total", report.Total,
		"registrados", report.Succeeded,
		"con_errores", report.Failed,
	)
	return report
}

// IngestCSV parses CSV input and ingests each row as a create candidate.
// The header must contain nombre, email, documento_identidad, and
// fecha_nacimiento; a foto column is optional. A row missing a required
// value becomes a per-item failure rather than aborting the batch.
func (r *repo) IngestCSV(ctx context.Context, reader io.Reader) (*BatchReport, error) {
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, ErrInvalidCSV
	}

	columns, err := parseCSVHeader(header)
	if err != nil {
		return nil, err
	}

	report := &BatchReport{Items: make([]BatchItem, 0)}

	for i := 0; ; i++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}

		report.Total++
		item := BatchItem{Index: i}

		if err != nil {
			item.Error = fmt.Sprintf("fila invalida: %v", err)
			report.Failed++
			report.Items = append(report.Items, item)
			continue
		}

		cmd, err := rowToCommand(row, columns)
		if err != nil {
			item.Error = err.Error()
			report.Failed++
			report.Items = append(report.Items, item)
			continue
		}

		item.DocumentID = strings.ToUpper(cmd.DocumentID)

		u, err := r.Create(ctx, cmd)
		if err != nil {
			item.Error = err.Error()
			report.Failed++
		} else {
			item.Usuario = u
			report.Succeeded++
		}

		report.Items = append(report.Items, item)
	}

	r.logger.Info(
		"carga csv completada",
		"total", report.Total,
		"registrados", report.Succeeded,
		"con_errores", report.Failed,
	)
	return report, nil
}

func parseCSVHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range csvRequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, ErrInvalidCSV
		}
	}

	return columns, nil
}

func rowToCommand(row []string, columns map[string]int) (CreateCommand, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	for _, required := range csvRequiredColumns {
		if field(required) == "" {
			return CreateCommand{}, fmt.Errorf("falta el campo requerido %q", required)
		}
	}

	cmd := CreateCommand{
		Name:       field("nombre"),
		Email:      field("email"),
		DocumentID: field("documento_identidad"),
		BirthDate:  field("fecha_nacimiento"),
	}

	if foto := field("foto"); foto != "" {
		cmd.PhotoURL = &foto
	}

	return cmd, nil
}
