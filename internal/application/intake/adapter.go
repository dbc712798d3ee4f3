package intake

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/po-intake/backend/internal/domain/order"
	"github.com/po-intake/backend/internal/domain/shared"
)

// extractedDataKey marks the multi-page extraction shape; its absence
// means the body is already canonical.
const extractedDataKey = "extracted_data"

// pageKeyPrefix names page entries inside the extraction container
const pageKeyPrefix = "page_"

// primaryPage supplies all header fields in the extraction shape
const primaryPage = pageKeyPrefix + "1"

// canonicalPayload is the direct input shape. Every field tolerates
// the {"value": ...} wrapper.
type canonicalPayload struct {
	UniqueOrderID          OptString         `json:"unique_order_id"`
	ClientID               OptString         `json:"client_id"`
	VendorID               OptString         `json:"vendor_id"`
	ShipToDestination      OptString         `json:"ship_to_destination"`
	LocationGroup          OptString         `json:"location_group"`
	Location               OptString         `json:"location"`
	OrderDate              OptString         `json:"order_date"`
	EstimatedDeliveryDate  OptString         `json:"estimated_delivery_date"`
	CurrencyCode           OptString         `json:"currency_code"`
	CurrencyConversionRate OptString         `json:"currency_conversion_rate"`
	SupplierRef            OptString         `json:"supplier_ref"`
	CustomerSO             OptString         `json:"customer_so"`
	AssignedTo             OptString         `json:"assigned_to"`
	PaymentTerms           OptString         `json:"payment_terms"`
	ShippingTerms          OptString         `json:"shipping_terms"`
	CarrierID              OptString         `json:"carrier_id"`
	CarrierMode            OptString         `json:"carrier_mode"`
	FOB                    OptString         `json:"fob"`
	SpecialInstructions    OptString         `json:"special_instructions"`
	SailingDate            OptString         `json:"sailing_date"`
	OriginShipDate         OptString         `json:"origin_ship_date"`
	LoadID                 OptString         `json:"load_id"`
	LineItems              []lineItemPayload `json:"line_items"`
}

// extractionPage is one page of the OCR extraction shape. Only the
// primary page contributes header fields; line items are collected from
// all pages.
type extractionPage struct {
	PurchaseOrderNumber  OptString         `json:"purchase_order_number"`
	SupplierName         OptString         `json:"supplier_name"`
	VendorID             OptString         `json:"vendor_id"`
	ShipTo               OptString         `json:"ship_to"`
	PODate               OptString         `json:"po_date"`
	DeliveryDate         OptString         `json:"delivery_date"`
	ShippingInstructions OptString         `json:"shipping_instructions"`
	LineItems            []lineItemPayload `json:"line_items"`
}

// lineItemPayload covers the item fields of both shapes; the canonical
// shape uses product_id/unit_of_measure, the extraction shape
// item_number/unit.
type lineItemPayload struct {
	ProductID        OptString `json:"product_id"`
	ItemNumber       OptString `json:"item_number"`
	Quantity         OptString `json:"quantity"`
	UnitOfMeasure    OptString `json:"unit_of_measure"`
	Unit             OptString `json:"unit"`
	Size             OptString `json:"size"`
	UnitPrice        OptString `json:"unit_price"`
	ForeignUnitPrice OptString `json:"foreign_unit_price"`
	Vintage          OptString `json:"vintage"`
	UPC              OptString `json:"upc"`
	Weight           OptString `json:"weight"`
}

// Adapt detects the input shape and flattens it into one canonical
// header plus the ordered raw line items. The shape decision is made
// exactly once; everything downstream sees only the canonical form.
// Structural problems surface as MALFORMED_INPUT; value-level problems
// never fail here, they degrade during normalization and come back as
// notes naming the affected field.
func Adapt(body []byte) (*order.PurchaseOrder, []order.LineItemDraft, []order.NormalizationNote, error) {
	var probe struct {
		ExtractedData json.RawMessage `json:"extracted_data"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, nil, nil, shared.NewDomainError("MALFORMED_INPUT", "Request body is not valid JSON: "+err.Error())
	}

	if len(probe.ExtractedData) > 0 && string(probe.ExtractedData) != "null" {
		return adaptExtraction(probe.ExtractedData)
	}
	return adaptCanonical(body)
}

// dateNormalizer wraps order.NormalizeDate and keeps a note for every
// input it had to absorb
type dateNormalizer struct {
	notes []order.NormalizationNote
}

func (d *dateNormalizer) normalize(field, raw string) *time.Time {
	t, ok := order.NormalizeDate(raw)
	if !ok {
		d.notes = append(d.notes, order.NormalizationNote{Field: field, Raw: raw})
	}
	return t
}

// adaptCanonical passes the direct shape through, normalizing only
// date and rate values.
func adaptCanonical(body []byte) (*order.PurchaseOrder, []order.LineItemDraft, []order.NormalizationNote, error) {
	var p canonicalPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, nil, nil, shared.NewDomainError("MALFORMED_INPUT", "Request body does not match the expected order shape: "+err.Error())
	}

	var dates dateNormalizer
	header := &order.PurchaseOrder{
		UniqueOrderID:          p.UniqueOrderID.Value,
		ClientID:               p.ClientID.Value,
		VendorID:               p.VendorID.Value,
		ShipToDestination:      p.ShipToDestination.Value,
		LocationGroup:          p.LocationGroup.Value,
		Location:               p.Location.Value,
		OrderDate:              dates.normalize("order_date", p.OrderDate.Value),
		EstimatedDeliveryDate:  dates.normalize("estimated_delivery_date", p.EstimatedDeliveryDate.Value),
		CurrencyCode:           p.CurrencyCode.Value,
		CurrencyConversionRate: order.NormalizeConversionRate(p.CurrencyConversionRate.Value),
		SupplierRef:            p.SupplierRef.Value,
		CustomerSO:             p.CustomerSO.Value,
		AssignedTo:             p.AssignedTo.Value,
		PaymentTerms:           p.PaymentTerms.Value,
		ShippingTerms:          p.ShippingTerms.Value,
		CarrierID:              p.CarrierID.Value,
		CarrierMode:            p.CarrierMode.Value,
		FOB:                    p.FOB.Value,
		SpecialInstructions:    p.SpecialInstructions.Value,
		SailingDate:            dates.normalize("sailing_date", p.SailingDate.Value),
		OriginShipDate:         dates.normalize("origin_ship_date", p.OriginShipDate.Value),
		LoadID:                 p.LoadID.Value,
	}

	drafts := make([]order.LineItemDraft, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		drafts = append(drafts, toDraft(li))
	}

	return header, drafts, dates.notes, nil
}

// adaptExtraction flattens the multi-page OCR shape. Header fields come
// from page 1 only; line items are merged from every page in page
// order. Fields the extraction shape cannot supply stay at their empty
// defaults.
func adaptExtraction(container json.RawMessage) (*order.PurchaseOrder, []order.LineItemDraft, []order.NormalizationNote, error) {
	var rawPages map[string]json.RawMessage
	if err := json.Unmarshal(container, &rawPages); err != nil {
		return nil, nil, nil, shared.NewDomainError("MALFORMED_INPUT", "Extraction container is not an object: "+err.Error())
	}

	pageKeys := make([]string, 0, len(rawPages))
	for key := range rawPages {
		if _, ok := pageNumber(key); ok {
			pageKeys = append(pageKeys, key)
		}
	}
	if len(pageKeys) == 0 {
		return nil, nil, nil, shared.NewDomainError("MALFORMED_INPUT", "Extraction container has no pages")
	}
	if _, ok := rawPages[primaryPage]; !ok {
		return nil, nil, nil, shared.NewDomainError("MALFORMED_INPUT", fmt.Sprintf("Extraction container is missing %s", primaryPage))
	}

	sort.Slice(pageKeys, func(i, j int) bool {
		ni, _ := pageNumber(pageKeys[i])
		nj, _ := pageNumber(pageKeys[j])
		return ni < nj
	})

	var first extractionPage
	if err := json.Unmarshal(rawPages[primaryPage], &first); err != nil {
		return nil, nil, nil, shared.NewDomainError("MALFORMED_INPUT", "Primary extraction page is malformed: "+err.Error())
	}

	var dates dateNormalizer
	header := &order.PurchaseOrder{
		UniqueOrderID:          first.PurchaseOrderNumber.Value,
		ClientID:               first.SupplierName.Value,
		VendorID:               first.VendorID.Value,
		ShipToDestination:      first.ShipTo.Value,
		OrderDate:              dates.normalize("po_date", first.PODate.Value),
		EstimatedDeliveryDate:  dates.normalize("delivery_date", first.DeliveryDate.Value),
		SpecialInstructions:    first.ShippingInstructions.Value,
		CurrencyCode:           "",
		CurrencyConversionRate: order.NormalizeConversionRate(""),
	}

	var drafts []order.LineItemDraft
	for _, key := range pageKeys {
		var page extractionPage
		if err := json.Unmarshal(rawPages[key], &page); err != nil {
			return nil, nil, nil, shared.NewDomainError("MALFORMED_INPUT", fmt.Sprintf("Extraction page %s is malformed: %s", key, err.Error()))
		}
		for _, li := range page.LineItems {
			drafts = append(drafts, toDraft(li))
		}
	}

	return header, drafts, dates.notes, nil
}

// toDraft maps one boundary line item to a draft, preserving the
// present/absent distinction for every optional field
func toDraft(li lineItemPayload) order.LineItemDraft {
	productID := li.ProductID.Value
	if productID == "" {
		productID = li.ItemNumber.Value
	}
	unit := li.UnitOfMeasure
	if !unit.Set {
		unit = li.Unit
	}
	return order.LineItemDraft{
		ProductID:        productID,
		Quantity:         li.Quantity.Ptr(),
		Unit:             unit.Ptr(),
		Size:             li.Size.Ptr(),
		UnitPrice:        li.UnitPrice.Ptr(),
		ForeignUnitPrice: li.ForeignUnitPrice.Ptr(),
		Vintage:          li.Vintage.Ptr(),
		UPC:              li.UPC.Ptr(),
		Weight:           li.Weight.Ptr(),
	}
}

// pageNumber extracts N from a "page_N" key
func pageNumber(key string) (int, bool) {
	if !strings.HasPrefix(key, pageKeyPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(key, pageKeyPrefix))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
