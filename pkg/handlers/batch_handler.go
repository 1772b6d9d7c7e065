package handlers

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"rental-pricing-api/pkg/models"
	"rental-pricing-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// BatchRowError reports a row that could not be analyzed.
type BatchRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// AnalyzeBatch runs one analysis per data row of an uploaded .xlsx or
// .csv portfolio file. Column positions are detected from the header by
// name (Spanish and English aliases accepted). Row failures are
// collected per row and never abort the batch.
func (h *AnalysisHandler) AnalyzeBatch(c *gin.Context) {
	start := time.Now()

	flow := c.Query("flow")
	settings := h.brokerage
	if flow == services.FlowQuick {
		settings = h.quick
	} else if flow != "" && flow != services.FlowBrokerage {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("unknown flow %q: use 'brokerage' or 'quick'", flow),
		})
		return
	}

	c.Request.ParseMultipartForm(10 << 20) // 10MB limit

	file, fileHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file."})
		return
	}
	defer file.Close()

	var rows [][]string
	fileName := fileHeader.Filename

	if strings.HasSuffix(strings.ToLower(fileName), ".xlsx") {
		f, err := excelize.OpenReader(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open the Excel file."})
			return
		}
		rows, err = f.GetRows(f.GetSheetName(0))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read rows from the Excel sheet."})
			return
		}
	} else if strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		r := csv.NewReader(file)
		rows, err = r.ReadAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse the CSV file."})
			return
		}
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type. Upload .xlsx or .csv."})
		return
	}

	if len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The file needs a header row and at least one data row."})
		return
	}

	header := rows[0]
	dataRows := rows[1:]

	cols := map[string]int{
		"address":       findIndex(header, "address", "direccion", "dirección"),
		"value":         findIndex(header, "property_value", "value", "valor", "valor_propiedad"),
		"valueCurrency": findIndex(header, "property_value_currency", "value_currency", "moneda_valor"),
		"size":          findIndex(header, "size_m2", "size", "superficie", "m2"),
		"rent":          findIndex(header, "suggested_rent", "rent", "arriendo", "renta"),
		"rentCurrency":  findIndex(header, "suggested_rent_currency", "rent_currency", "moneda_arriendo"),
		"capture":       findIndex(header, "capture_price", "precio_captacion", "precio_captación"),
		"maintenance":   findIndex(header, "maintenance_annual", "maintenance", "mantencion", "mantención"),
		"tax":           findIndex(header, "property_tax_annual", "property_tax", "contribuciones"),
		"insurance":     findIndex(header, "insurance_annual", "insurance", "seguro"),
		"ufRate":        findIndex(header, "uf_exchange_rate", "uf_rate", "valor_uf"),
	}

	if cols["size"] == -1 || cols["rent"] == -1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Required columns not found: the file needs at least a size and a rent column.",
		})
		return
	}

	results := make([]models.RentalAnalysisResult, 0, len(dataRows))
	rowErrors := make([]BatchRowError, 0)

	for i, row := range dataRows {
		if isBlankRow(row) {
			continue
		}
		raw := models.RawAnalysisInput{
			Address:               cellAt(row, cols["address"]),
			PropertyValue:         cellAt(row, cols["value"]),
			PropertyValueCurrency: cellAt(row, cols["valueCurrency"]),
			SizeM2:                cellAt(row, cols["size"]),
			SuggestedRent:         cellAt(row, cols["rent"]),
			SuggestedRentCurrency: cellAt(row, cols["rentCurrency"]),
			CapturePrice:          cellAt(row, cols["capture"]),
			MaintenanceAnnual:     cellAt(row, cols["maintenance"]),
			PropertyTaxAnnual:     cellAt(row, cols["tax"]),
			InsuranceAnnual:       cellAt(row, cols["insurance"]),
			ExchangeRate:          cellAt(row, cols["ufRate"]),
		}
		if raw.SizeM2 == "" && raw.SuggestedRent == "" {
			rowErrors = append(rowErrors, BatchRowError{
				Row:   i + 2, // 1-based, after the header
				Error: "row has neither size nor rent",
			})
			continue
		}
		results = append(results, h.analysisService.Run(raw, settings))
	}

	log.Printf("Batch analysis of %s: %d rows analyzed, %d skipped in %v",
		fileName, len(results), len(rowErrors), time.Since(start))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flow":    settings.Flow,
		"file":    fileName,
		"count":   len(results),
		"data":    results,
		"errors":  rowErrors,
	})
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
