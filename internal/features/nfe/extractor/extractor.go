package extractor

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"nfe-tracker/internal/features/tracking/domain"
)

var (
	// ErrMalformedXML is returned when the uploaded bytes are not well-formed XML.
	ErrMalformedXML = errors.New("uploaded file is not well-formed XML")
	// ErrMissingRoot is returned when no fiscal document root matches any candidate.
	ErrMissingRoot = errors.New("no fiscal document root found")
	// ErrKeyNotFound is returned when no access key candidate exists in the document.
	ErrKeyNotFound = errors.New("no access key found in fiscal document")
)

// InvalidKeyError reports a key candidate that was present in the document but
// failed the 44-digit-numeric rule. Kept distinct from ErrKeyNotFound because a
// corrupt-but-present key warrants a different user message.
type InvalidKeyError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("access key candidate %q is not a 44-digit number", e.Value)
}

// idPrefix is the fixed prefix of the infNFe Id attribute ("NFe" + key).
const idPrefix = "NFe"

// Result is the outcome of a successful extraction.
type Result struct {
	// Key is the validated 44-digit access key.
	Key domain.AccessKey
	// Hints is the opportunistically extracted shipment metadata, nil when the
	// document carried none.
	Hints *domain.ShipmentHints
	// Diagnostics lists the non-fatal anomalies recovered during extraction.
	Diagnostics []domain.Diagnostic
}

// fiscalDoc is the located fiscal-document subtree, independent of which root
// candidate matched.
type fiscalDoc struct {
	inf  *infElement
	prot *protElement
	// key holds a chNFe found as a direct child of the located root.
	key string
}

// Extract parses an uploaded NF-e XML, locates the fiscal document, validates
// the access key and opportunistically reads shipment hints. It is a pure
// transform over the supplied bytes.
func Extract(data []byte) (*Result, error) {
	if err := checkWellFormed(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}

	doc := locateRoot(data)
	if doc == nil {
		return nil, ErrMissingRoot
	}

	var diags []domain.Diagnostic

	key, err := resolveKey(doc, &diags)
	if err != nil {
		return nil, err
	}

	hints := extractHints(doc.inf, &diags)

	return &Result{Key: key, Hints: hints, Diagnostics: diags}, nil
}

// checkWellFormed runs a full token scan so structural XML errors are reported
// before any candidate matching happens.
func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	sawElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			// The decoder tolerates top-level character data, so an input
			// with no element at all still scans cleanly.
			if !sawElement {
				return errors.New("no XML element found")
			}
			return nil
		}
		if err != nil {
			return err
		}
		if _, ok := tok.(xml.StartElement); ok {
			sawElement = true
		}
	}
}

// locateRoot tries the structural candidates most specific first: the
// protocol-wrapped nfeProc envelope, then a bare NFe document, then a
// root-level infNFe. This tolerates both raw and provider-acknowledged
// document variants.
func locateRoot(data []byte) *fiscalDoc {
	candidates := []func([]byte) *fiscalDoc{
		locateProcEnvelope,
		locateBareDocument,
		locateRootLevelInf,
	}
	for _, locate := range candidates {
		if doc := locate(data); doc != nil {
			return doc
		}
	}
	return nil
}

func locateProcEnvelope(data []byte) *fiscalDoc {
	var proc procElement
	if err := xml.Unmarshal(data, &proc); err != nil {
		return nil
	}
	if proc.NFe == nil || proc.NFe.Inf == nil {
		return nil
	}
	return &fiscalDoc{inf: proc.NFe.Inf, prot: proc.Prot, key: proc.NFe.Key}
}

func locateBareDocument(data []byte) *fiscalDoc {
	var nfe nfeElement
	if err := xml.Unmarshal(data, &nfe); err != nil {
		return nil
	}
	if nfe.Inf == nil {
		return nil
	}
	return &fiscalDoc{inf: nfe.Inf, key: nfe.Key}
}

func locateRootLevelInf(data []byte) *fiscalDoc {
	var inf infElement
	if err := xml.Unmarshal(data, &inf); err != nil {
		return nil
	}
	return &fiscalDoc{inf: &inf}
}

// resolveKey walks the ordered candidate chain, validating each value before
// acceptance. Invalid candidates are skipped with a diagnostic; when nothing
// validates the error distinguishes corrupt-but-present from absent.
func resolveKey(doc *fiscalDoc, diags *[]domain.Diagnostic) (domain.AccessKey, error) {
	type candidate struct {
		source string
		value  string
	}

	var candidates []candidate

	// Most authoritative first: the protocol confirmation only exists on
	// provider-acknowledged documents.
	if doc.prot != nil && doc.prot.InfProt.Key != "" {
		candidates = append(candidates, candidate{"protNFe/infProt/chNFe", doc.prot.InfProt.Key})
	}
	if id := strings.TrimSpace(doc.inf.ID); id != "" {
		candidates = append(candidates, candidate{"infNFe/@Id", strings.TrimPrefix(id, idPrefix)})
	}
	if doc.key != "" {
		candidates = append(candidates, candidate{"chNFe", doc.key})
	}

	if len(candidates) == 0 {
		return "", ErrKeyNotFound
	}

	for _, c := range candidates {
		key, err := domain.ParseAccessKey(strings.TrimSpace(c.value))
		if err != nil {
			*diags = append(*diags, domain.Diagnostic{
				Field:  c.source,
				Reason: fmt.Sprintf("candidate %q failed access key validation", c.value),
			})
			continue
		}
		return key, nil
	}

	return "", &InvalidKeyError{Value: strings.TrimSpace(candidates[0].value)}
}

// extractHints reads carrier, volume, billing and installment data. Every
// field is independently optional; absence never aborts extraction.
func extractHints(inf *infElement, diags *[]domain.Diagnostic) *domain.ShipmentHints {
	hints := &domain.ShipmentHints{}

	if inf.Transp != nil {
		hints.CarrierName = strings.TrimSpace(inf.Transp.Carrier.Name)
		if len(inf.Transp.Volumes) > 0 {
			v := inf.Transp.Volumes[0]
			if v != (volElement{}) {
				hints.Volume = &domain.VolumeInfo{
					Quantity:    v.Quantity,
					Species:     v.Species,
					NetWeight:   v.NetWeight,
					GrossWeight: v.GrossWeight,
				}
			}
		}
	}

	if inf.Cobr != nil {
		if f := inf.Cobr.Invoice; f != nil && *f != (fatElement{}) {
			hints.Invoice = &domain.InvoiceInfo{
				Number:        f.Number,
				OriginalValue: f.OriginalValue,
				DiscountValue: f.DiscountValue,
				NetValue:      f.NetValue,
			}
		}
		for _, dup := range inf.Cobr.Installments {
			if dup == (dupElement{}) {
				// Entries with none of number/due-date/value carry no information.
				*diags = append(*diags, domain.Diagnostic{
					Field:  "cobr/dup",
					Reason: "dropped empty installment entry",
				})
				continue
			}
			hints.Installments = append(hints.Installments, domain.Installment{
				Number:  dup.Number,
				DueDate: dup.DueDate,
				Value:   dup.Value,
			})
		}
	}

	if hints.IsEmpty() {
		return nil
	}
	return hints
}
