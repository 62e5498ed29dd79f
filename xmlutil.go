package worldpay_cg_hosted

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	dsig "github.com/russellhaering/goxmldsig"
)

const (
	dtdPublicID = "-//WorldPay//DTD WorldPay PaymentService v1//EN"
	dtdSystemID = "http://dtd.worldpay.com/paymentService_v1.dtd"
)

// marshalOrder serializes the document with its utf-8 declaration and the
// paymentService doctype.
func marshalOrder(d *OrderDocument) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.CreateDirective(fmt.Sprintf("DOCTYPE paymentService PUBLIC %q %q", dtdPublicID, dtdSystemID))
	doc.SetRoot(d.Element())

	out := bytes.NewBuffer(nil)
	if _, err := doc.WriteTo(out); err != nil {
		return nil, fmt.Errorf("serialize order xml: %w", err)
	}
	return out.Bytes(), nil
}

// payloadDigest is the hex SHA-256 of the exclusive C14N form of el. It is
// stable across whitespace and attribute-order differences, so it can be
// used to correlate log lines for the same document.
func payloadDigest(el *etree.Element) (string, error) {
	canon, err := exclusiveC14N(el)
	if err != nil {
		return "", fmt.Errorf("c14n: %w", err)
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}

func exclusiveC14N(node *etree.Element) ([]byte, error) {
	canon := dsig.MakeC14N10ExclusiveCanonicalizerWithPrefixList("")
	return canon.Canonicalize(node.Copy())
}

// findChild returns the first child element whose local name matches,
// ignoring any namespace prefix.
func findChild(parent *etree.Element, localName string) *etree.Element {
	if parent == nil {
		return nil
	}
	for _, c := range parent.ChildElements() {
		tag := c.Tag
		if tag == localName {
			return c
		}
		if idx := strings.LastIndex(tag, ":"); idx >= 0 {
			if tag[idx+1:] == localName {
				return c
			}
		}
	}
	return nil
}

// findPath walks findChild through each local name in turn.
func findPath(parent *etree.Element, names ...string) *etree.Element {
	el := parent
	for _, n := range names {
		el = findChild(el, n)
		if el == nil {
			return nil
		}
	}
	return el
}

// childText returns the trimmed text of the element at path, and whether
// it exists with non-empty content.
func childText(parent *etree.Element, names ...string) (string, bool) {
	el := findPath(parent, names...)
	if el == nil {
		return "", false
	}
	text := strings.TrimSpace(el.Text())
	return text, text != ""
}

// attrValue returns the named attribute of el, and whether it is present.
func attrValue(el *etree.Element, key string) (string, bool) {
	if el == nil {
		return "", false
	}
	a := el.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}
