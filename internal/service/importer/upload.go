package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/activity"
)

type column int

const (
	colTitle column = iota
	colDescription
	colArea
	colPriority
	colStatus
	colResponsible
	colDeadline
	colLocation
	colHow
	colCost
	numColumns
)

// headerAliases maps every accepted spreadsheet header to its column.
// Matching is case-insensitive.
var headerAliases = map[column][]string{
	colTitle:       {"Título", "Titulo", "Title", "O Quê?", "O Que?", "Atividade", "Task"},
	colDescription: {"Descrição", "Descricao", "Description", "Por Quê?", "Por Que?", "Justificativa"},
	colArea:        {"Área", "Area", "Setor"},
	colPriority:    {"Prioridade", "Priority"},
	colStatus:      {"Status", "Estado"},
	colResponsible: {"Responsável", "Responsavel", "Responsible", "Quem?", "Quem"},
	colDeadline:    {"Prazo", "Deadline", "Quando?", "Quando", "Data"},
	colLocation:    {"Local", "Location", "Onde?", "Onde"},
	colHow:         {"Como?", "Como", "How", "Método", "Processo"},
	colCost:        {"Custo", "Cost", "Quanto?", "Quanto", "Valor", "Investimento"},
}

// RowError describes a spreadsheet line that could not be turned into an
// activity. Line is 1-based and counts the header.
type RowError struct {
	Line    int
	Title   string
	Message string
}

// UploadResult holds the parsed rows of a spreadsheet. Nothing is persisted.
type UploadResult struct {
	Rows   []activity.CreateActivityInput
	Errors []RowError
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// zipMagic opens every OOXML workbook.
var zipMagic = []byte("PK\x03\x04")

// Format is a spreadsheet file format accepted by upload and produced by
// export.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ContentType returns the MIME type served for an exported file.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return xlsxContentType
}

// ParseFormat reads an export format name. Empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", domain.NewValidationError("format", "must be xlsx or csv")
}

// DetectFormat picks the upload format from the file name, then from the
// declared content type. Anything unrecognized is read as CSV.
func DetectFormat(filename, contentType string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv", ".tsv", ".txt":
		return FormatCSV, nil
	case ".xls", ".ods":
		return "", domain.NewValidationError("file", "legacy .xls and .ods workbooks are not supported, save the file as .xlsx")
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case xlsxContentType:
		return FormatXLSX, nil
	case "application/vnd.ms-excel", "application/vnd.oasis.opendocument.spreadsheet":
		return "", domain.NewValidationError("file", "legacy .xls and .ods workbooks are not supported, save the file as .xlsx")
	}
	return FormatCSV, nil
}

// Parse reads an uploaded spreadsheet. A zip payload is always read as a
// workbook, whatever its name says.
func Parse(filename, contentType string, r io.Reader) (*UploadResult, error) {
	format, err := DetectFormat(filename, contentType)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(r)
	if magic, err := br.Peek(len(zipMagic)); err == nil && bytes.Equal(magic, zipMagic) {
		format = FormatXLSX
	}
	if format == FormatXLSX {
		return ParseXLSX(br)
	}
	return ParseCSV(br)
}

// ParseXLSX reads the first sheet of an .xlsx workbook.
func ParseXLSX(r io.Reader) (*UploadResult, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.NewValidationError("file", fmt.Sprintf("invalid workbook: %v", err))
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewValidationError("file", "spreadsheet is empty")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, domain.NewValidationError("file", fmt.Sprintf("invalid workbook: %v", err))
	}
	return parseRecords(&rowsReader{rows: rows})
}

// ParseCSV reads a spreadsheet exported as CSV. The delimiter (comma,
// semicolon or tab) is detected from the header line.
func ParseCSV(r io.Reader) (*UploadResult, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	firstLine, err := br.Peek(br.Size())
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if i := bytes.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}

	reader := csv.NewReader(br)
	reader.Comma = detectDelimiter(firstLine)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.LazyQuotes = true
	return parseRecords(reader)
}

// recordReader yields spreadsheet rows, header first, until io.EOF.
type recordReader interface {
	Read() ([]string, error)
}

type rowsReader struct {
	rows [][]string
	next int
}

func (r *rowsReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.next]
	r.next++
	return row, nil
}

func parseRecords(reader recordReader) (*UploadResult, error) {
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("file", "spreadsheet is empty")
		}
		return nil, domain.NewValidationError("file", fmt.Sprintf("invalid spreadsheet: %v", err))
	}

	index := mapHeader(header)
	if index[colTitle] < 0 {
		return nil, domain.NewValidationError("file", "no title column found")
	}

	result := &UploadResult{}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, domain.NewValidationError("file", fmt.Sprintf("line %d: %v", line, err))
		}
		if blank(record) {
			continue
		}

		in := rowInput(record, index)
		if strings.TrimSpace(in.Title) == "" {
			result.Errors = append(result.Errors, RowError{Line: line, Message: "title is required"})
			continue
		}
		if err := in.Validate(); err != nil {
			result.Errors = append(result.Errors, RowError{Line: line, Title: in.Title, Message: err.Error()})
			continue
		}
		result.Rows = append(result.Rows, in)

		if len(result.Rows) > domain.MaxBulkItems {
			return nil, domain.NewValidationError("file", fmt.Sprintf("max %d activities per spreadsheet", domain.MaxBulkItems))
		}
	}

	if len(result.Rows) == 0 && len(result.Errors) == 0 {
		return nil, domain.NewValidationError("file", "no activities found in spreadsheet")
	}
	return result, nil
}

func detectDelimiter(line []byte) rune {
	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func mapHeader(header []string) [numColumns]int {
	var index [numColumns]int
	for c := range index {
		index[c] = -1
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		for c, aliases := range headerAliases {
			if index[c] >= 0 {
				continue
			}
			for _, alias := range aliases {
				if strings.EqualFold(h, alias) {
					index[c] = i
					break
				}
			}
		}
	}
	return index
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func rowInput(record []string, index [numColumns]int) activity.CreateActivityInput {
	get := func(c column) string {
		i := index[c]
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	priority := ParsePriority(get(colPriority))
	status := ParseStatus(get(colStatus))
	return activity.CreateActivityInput{
		Title:       get(colTitle),
		Area:        get(colArea),
		Priority:    &priority,
		Status:      &status,
		Description: optional(get(colDescription)),
		Responsible: optional(get(colResponsible)),
		Deadline:    optional(get(colDeadline)),
		Location:    optional(get(colLocation)),
		How:         optional(get(colHow)),
		Cost:        optional(get(colCost)),
	}
}

// ParsePriority reads a spreadsheet priority cell ("Alta", "high", "0",
// ...). Unknown or empty values are medium.
func ParsePriority(s string) domain.Priority {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "0" || strings.Contains(v, "alta") || strings.Contains(v, "high"):
		return domain.PriorityHigh
	case v == "2" || strings.Contains(v, "baixa") || strings.Contains(v, "low"):
		return domain.PriorityLow
	}
	return domain.PriorityMedium
}

// ParseStatus reads a spreadsheet status cell. Unknown or empty values are
// pending.
func ParseStatus(s string) domain.ActivityStatus {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "concluído"), strings.Contains(v, "concluido"), strings.Contains(v, "completed"):
		return domain.ActivityStatusCompleted
	case strings.Contains(v, "andamento"), strings.Contains(v, "progress"):
		return domain.ActivityStatusInProgress
	}
	return domain.ActivityStatusPending
}
