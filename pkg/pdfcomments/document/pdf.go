package document

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDF opens documents with pdfcpu.
type PDF struct {
	conf *model.Configuration
}

// NewPDF returns a PDF opener using relaxed validation.
// pdfcpu's on-disk configuration directory is disabled.
func NewPDF() *PDF {
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDF{conf: conf}
}

// Open reads the cross reference table of a PDF and resolves its page count.
func (p *PDF) Open(data []byte) (Document, error) {
	ctx, err := api.ReadContext(bytes.NewReader(data), p.conf)
	if err != nil {
		return nil, err
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, err
	}
	return &pdfDocument{ctx: ctx}, nil
}

type pdfDocument struct {
	ctx *model.Context
}

func (d *pdfDocument) PageCount() int {
	return d.ctx.PageCount
}

func (d *pdfDocument) Page(n int) (*Page, error) {
	if n < 1 || n > d.ctx.PageCount {
		return nil, fmt.Errorf("page %d out of range [1, %d]", n, d.ctx.PageCount)
	}

	pageDict, _, _, err := d.ctx.PageDict(n, false)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	if pageDict == nil {
		return nil, fmt.Errorf("page %d: missing page dictionary", n)
	}

	page := &Page{Number: n}

	obj, found := pageDict.Find("Annots")
	if !found || obj == nil {
		return page, nil
	}
	annots, err := d.ctx.DereferenceArray(obj)
	if err != nil {
		return nil, fmt.Errorf("page %d annotations: %w", n, err)
	}

	for _, o := range annots {
		annotDict, err := d.ctx.DereferenceDict(o)
		if err != nil {
			return nil, fmt.Errorf("page %d annotation: %w", n, err)
		}
		if annotDict == nil {
			continue
		}
		a := Annotation{}
		if subtype := annotDict.NameEntry("Subtype"); subtype != nil {
			a.Subtype = *subtype
		}
		if a.Contents, err = d.text(annotDict, "Contents"); err != nil {
			return nil, fmt.Errorf("page %d annotation contents: %w", n, err)
		}
		if a.Title, err = d.text(annotDict, "T"); err != nil {
			return nil, fmt.Errorf("page %d annotation title: %w", n, err)
		}
		page.Annotations = append(page.Annotations, a)
	}

	return page, nil
}

// text decodes a string or hex literal entry, returning "" when absent.
func (d *pdfDocument) text(dict types.Dict, key string) (string, error) {
	obj, found := dict.Find(key)
	if !found || obj == nil {
		return "", nil
	}
	obj, err := d.ctx.Dereference(obj)
	if err != nil {
		return "", err
	}
	switch v := obj.(type) {
	case types.StringLiteral:
		return types.StringLiteralToString(v)
	case types.HexLiteral:
		return types.HexLiteralToString(v)
	default:
		return "", nil
	}
}
