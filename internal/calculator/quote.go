package calculator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SystemDetails is the write-once payload attached to a quote request.
// It must round-trip exactly: operators re-open it later to review what
// the customer configured.
type SystemDetails struct {
	Appliances []ApplianceEntry `json:"appliances"`
	Results    SizingResult     `json:"results"`
}

// Contact is the lead's contact information, collected on the order
// form next to the calculator.
type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Message string `json:"message"`
}

// EncodeSystemDetails serializes the appliance set and its sizing into
// the opaque blob stored with the quote. A failure here aborts the
// submission; a corrupt payload must never be stored.
func EncodeSystemDetails(appliances []ApplianceEntry, results SizingResult) (string, error) {
	raw, err := json.Marshal(SystemDetails{Appliances: appliances, Results: results})
	if err != nil {
		return "", fmt.Errorf("failed to encode system details: %w", err)
	}
	return string(raw), nil
}

// DecodeSystemDetails is the operator-side inverse of
// EncodeSystemDetails.
func DecodeSystemDetails(blob string) (*SystemDetails, error) {
	var details SystemDetails
	if err := json.Unmarshal([]byte(blob), &details); err != nil {
		return nil, fmt.Errorf("failed to decode system details: %w", err)
	}
	return &details, nil
}

// Summary renders the human-readable notification body for a new system
// order: headline figures plus the itemized appliance list.
func Summary(contact Contact, appliances []ApplianceEntry, results SizingResult) string {
	var b strings.Builder

	b.WriteString("New Solar System Order:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", contact.Name)
	fmt.Fprintf(&b, "Phone: %s\n", contact.Phone)
	fmt.Fprintf(&b, "Email: %s\n", contact.Email)
	fmt.Fprintf(&b, "Address: %s\n", contact.Address)

	b.WriteString("\nSystem Details:\n")
	fmt.Fprintf(&b, "Total Load: %.0fW\n", results.TotalLoad)
	fmt.Fprintf(&b, "Daily Energy: %.2fkWh\n", results.DailyEnergy/1000)
	fmt.Fprintf(&b, "Inverter: %.1fkVA\n", float64(results.InverterSize)/1000)
	fmt.Fprintf(&b, "Battery: %dAh\n", results.BatteryCapacity)
	fmt.Fprintf(&b, "Panels: %d x %dW\n", results.PanelCount, PanelWatts)

	b.WriteString("\nAppliances:\n")
	for _, a := range appliances {
		fmt.Fprintf(&b, "- %s (%.0fW x %d)\n", a.Name, a.Watts, a.Quantity)
	}

	if contact.Message != "" {
		b.WriteString("\nAdditional Notes:\n")
		b.WriteString(contact.Message)
		b.WriteString("\n")
	}

	return b.String()
}
