package extractor

import "encoding/xml"

// XML mappings for the NF-e layout subset this extractor reads. Tags match by
// local name only, so both namespaced and namespace-less exports decode.

// procElement is the processing envelope of a provider-acknowledged document.
type procElement struct {
	XMLName xml.Name     `xml:"nfeProc"`
	NFe     *nfeElement  `xml:"NFe"`
	Prot    *protElement `xml:"protNFe"`
}

// protElement is the authorization protocol subtree.
type protElement struct {
	InfProt struct {
		Key string `xml:"chNFe"`
	} `xml:"infProt"`
}

// nfeElement is the fiscal document root. Some simplified exports place the
// access key directly under it as a chNFe child.
type nfeElement struct {
	XMLName xml.Name    `xml:"NFe"`
	Inf     *infElement `xml:"infNFe"`
	Key     string      `xml:"chNFe"`
}

// infElement is the document body. The Id attribute carries the access key
// behind a fixed "NFe" prefix.
type infElement struct {
	XMLName xml.Name       `xml:"infNFe"`
	ID      string         `xml:"Id,attr"`
	Transp  *transpElement `xml:"transp"`
	Cobr    *cobrElement   `xml:"cobr"`
}

type transpElement struct {
	Carrier struct {
		Name string `xml:"xNome"`
	} `xml:"transporta"`
	Volumes []volElement `xml:"vol"`
}

type volElement struct {
	Quantity    string `xml:"qVol"`
	Species     string `xml:"esp"`
	NetWeight   string `xml:"pesoL"`
	GrossWeight string `xml:"pesoB"`
}

type cobrElement struct {
	Invoice      *fatElement  `xml:"fat"`
	Installments []dupElement `xml:"dup"`
}

type fatElement struct {
	Number        string `xml:"nFat"`
	OriginalValue string `xml:"vOrig"`
	DiscountValue string `xml:"vDesc"`
	NetValue      string `xml:"vLiq"`
}

type dupElement struct {
	Number  string `xml:"nDup"`
	DueDate string `xml:"dVenc"`
	Value   string `xml:"vDup"`
}
