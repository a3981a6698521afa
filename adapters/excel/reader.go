package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"blendviz/domain/formulation"
	"blendviz/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader reads a formulation spreadsheet, Excel or CSV, chosen by file
// extension.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given file path.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// readGrid reads the raw string grid from the first sheet (or the CSV file).
func (r *DataReader) readGrid() ([][]string, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.LoadFailed(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
	}

	switch r.fileType {
	case "csv":
		file, err := os.Open(r.filePath)
		if err != nil {
			return nil, errors.LoadFailed(fmt.Sprintf("failed to open CSV file %s", r.filePath), err)
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, errors.LoadFailed(fmt.Sprintf("failed to read CSV file %s", r.filePath), err)
		}
		return rows, nil
	default:
		f, err := excelize.OpenFile(r.filePath)
		if err != nil {
			return nil, errors.LoadFailed(fmt.Sprintf("failed to open Excel file %s", r.filePath), err)
		}
		defer f.Close()

		sheet := f.GetSheetName(0)
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, errors.LoadFailed(fmt.Sprintf("failed to read sheet %q of %s", sheet, r.filePath), err)
		}
		return rows, nil
	}
}

// ReadRecipeTable reads the formulation matrix: row 1 holds ingredient
// headers (first cell is the recipe-identifier column header and is ignored),
// column A holds recipe identifiers, remaining cells hold numeric weights.
// Blank cells are absent, explicit zeros are kept as zero-weight cells.
func (r *DataReader) ReadRecipeTable() (*formulation.RecipeTable, error) {
	rows, err := r.readGrid()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.LoadFailed(fmt.Sprintf("%s must have a header row and at least one recipe row", r.filePath), nil)
	}

	// Trailing blank header cells are padding from the reader; interior blanks
	// would desynchronize ingredient names from their data columns, so they
	// are a load error rather than a skip.
	header := rows[0]
	end := len(header)
	for end > 1 && strings.TrimSpace(header[end-1]) == "" {
		end--
	}
	if end < 2 {
		return nil, errors.LoadFailed(fmt.Sprintf("%s header row has no ingredient columns", r.filePath), nil)
	}

	ingredients := make([]string, 0, end-1)
	seen := make(map[string]bool)
	for j, cell := range header[1:end] {
		name := strings.TrimSpace(cell)
		if name == "" {
			return nil, errors.LoadFailed(fmt.Sprintf("%s: blank ingredient header at column %d", r.filePath, j+2), nil)
		}
		if seen[name] {
			return nil, errors.LoadFailed(fmt.Sprintf("%s: duplicate ingredient column %q", r.filePath, name), nil)
		}
		seen[name] = true
		ingredients = append(ingredients, name)
	}

	recipes := make([]string, 0, len(rows)-1)
	cells := make(map[string]map[string]float64, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		recipe := strings.TrimSpace(row[0])
		if recipe == "" {
			continue
		}
		if _, dup := cells[recipe]; dup {
			return nil, errors.LoadFailed(fmt.Sprintf("%s: duplicate recipe row %q", r.filePath, recipe), nil)
		}

		rowCells := make(map[string]float64, len(ingredients))
		for j, ingredient := range ingredients {
			col := j + 1
			if col >= len(row) {
				break
			}
			raw := strings.TrimSpace(row[col])
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.LoadFailed(
					fmt.Sprintf("%s: non-numeric weight %q at row %d, column %q", r.filePath, raw, i+2, ingredient), err)
			}
			if v < 0 {
				return nil, errors.LoadFailed(
					fmt.Sprintf("%s: negative weight %q at row %d, column %q", r.filePath, raw, i+2, ingredient), nil)
			}
			rowCells[ingredient] = v
		}

		recipes = append(recipes, recipe)
		cells[recipe] = rowCells
	}

	if len(recipes) == 0 {
		return nil, errors.LoadFailed(fmt.Sprintf("%s contains no recipe rows", r.filePath), nil)
	}

	log.Printf("[DataReader] Loaded %s: %d recipes x %d ingredients", r.filePath, len(recipes), len(ingredients))
	return formulation.NewRecipeTable(recipes, ingredients, cells), nil
}

// ReadSensoryMap reads the ingredient classification sheet. The header row
// must contain "product" and "Sensory Note" columns (case-insensitive).
// Notes outside the known category set are logged and left unclassified.
func (r *DataReader) ReadSensoryMap() (formulation.SensoryMap, error) {
	rows, err := r.readGrid()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, errors.LoadFailed(fmt.Sprintf("%s is empty", r.filePath), nil)
	}

	productCol, noteCol := -1, -1
	for j, cell := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "product":
			productCol = j
		case "sensory note":
			noteCol = j
		}
	}
	if productCol < 0 {
		return nil, errors.LoadFailed(fmt.Sprintf("%s: missing required column %q", r.filePath, "product"), nil)
	}
	if noteCol < 0 {
		return nil, errors.LoadFailed(fmt.Sprintf("%s: missing required column %q", r.filePath, "Sensory Note"), nil)
	}

	known := make(map[string]formulation.Category, len(formulation.CategoryOrder))
	for _, c := range formulation.CategoryOrder {
		known[strings.ToLower(string(c))] = c
	}

	sensory := make(formulation.SensoryMap)
	for _, row := range rows[1:] {
		if productCol >= len(row) || noteCol >= len(row) {
			continue
		}
		product := strings.TrimSpace(row[productCol])
		note := strings.TrimSpace(row[noteCol])
		if product == "" || note == "" {
			continue
		}
		category, ok := known[strings.ToLower(note)]
		if !ok {
			log.Printf("[DataReader] %s: unknown sensory note %q for %q, leaving unclassified", r.filePath, note, product)
			continue
		}
		sensory[product] = category
	}

	log.Printf("[DataReader] Loaded %s: sensory notes for %d ingredients", r.filePath, len(sensory))
	return sensory, nil
}

// ReadRecipeGroups reads the recipe grouping sheet. The header row must
// contain "recipe" and "group" columns (case-insensitive).
func (r *DataReader) ReadRecipeGroups() (formulation.RecipeGroup, error) {
	rows, err := r.readGrid()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, errors.LoadFailed(fmt.Sprintf("%s is empty", r.filePath), nil)
	}

	recipeCol, groupCol := -1, -1
	for j, cell := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "recipe":
			recipeCol = j
		case "group":
			groupCol = j
		}
	}
	if recipeCol < 0 {
		return nil, errors.LoadFailed(fmt.Sprintf("%s: missing required column %q", r.filePath, "recipe"), nil)
	}
	if groupCol < 0 {
		return nil, errors.LoadFailed(fmt.Sprintf("%s: missing required column %q", r.filePath, "group"), nil)
	}

	groups := make(formulation.RecipeGroup)
	for _, row := range rows[1:] {
		if recipeCol >= len(row) || groupCol >= len(row) {
			continue
		}
		recipe := strings.TrimSpace(row[recipeCol])
		group := strings.TrimSpace(row[groupCol])
		if recipe == "" || group == "" {
			continue
		}
		groups[recipe] = group
	}

	log.Printf("[DataReader] Loaded %s: group labels for %d recipes", r.filePath, len(groups))
	return groups, nil
}
