package source

import (
	"bytes"
	"fmt"
	"strings"

	"hotelinv/internal/domains/booking/ingest"
	"hotelinv/internal/domains/booking/normalize"

	"github.com/PuerkitoBio/goquery"
)

const (
	reservationTableSelector = "table.cdd0659f86"
	listRowSelector          = "tr.bui-table__row"
	headingAttr              = "data-heading"

	headingGuest     = "Tên khách"
	headingBookingID = "Mã số đặt phòng"
)

// ParseHTML reads a booking-platform reservation export. Two known layouts are
// tried before falling back to the first table in the document.
func ParseHTML(data []byte) ([]ingest.Row, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var rows []ingest.Row

	if table := doc.Find(reservationTableSelector).First(); table.Length() > 0 {
		rows = parseHeaderTable(table)
	} else if table := listTable(doc); table != nil {
		rows = parseListTable(table)
	} else if table := doc.Find("table").First(); table.Length() > 0 {
		rows = parseHeaderTable(table)
	} else {
		return nil, ErrNoTable
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return rows, nil
}

func listTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		if t.Find(listRowSelector).Length() > 0 && t.Find("[" + headingAttr + "]").Length() > 0 {
			found = t
			return false
		}
		return true
	})
	return found
}

func parseHeaderTable(table *goquery.Selection) []ingest.Row {
	headerRow := table.Find("thead tr").First()
	if headerRow.Length() == 0 {
		headerRow = table.Find("tr").First()
	}

	var headers []string
	headerRow.Find("th, td").Each(func(_ int, c *goquery.Selection) {
		headers = append(headers, strings.Join(textLines(c), " "))
	})

	body := table.Find("tbody tr")
	if table.Find("thead").Length() == 0 {
		body = body.NotSelection(headerRow)
	}
	if body.Length() == 0 {
		body = table.Find("tr").NotSelection(headerRow)
	}

	var rows []ingest.Row
	body.Each(func(_ int, tr *goquery.Selection) {
		row := ingest.Row{}
		tr.Find("td, th").Each(func(i int, cell *goquery.Selection) {
			heading := ""
			if i < len(headers) {
				heading = headers[i]
			}
			if heading == "" {
				heading = cell.AttrOr(headingAttr, "")
			}
			if heading == "" {
				return
			}

			lines := textLines(cell)
			if heading == headingGuest {
				name, genius := normalize.SplitGuestCell(lines)
				if cell.Find(`svg[alt="Genius"]`).Length() > 0 {
					genius = true
				}
				if name != "" {
					row[heading] = ingest.Text(name)
				}
				row[ingest.LabelGenius] = ingest.Bool(genius)
				return
			}
			if len(lines) > 0 {
				row[heading] = ingest.Text(lines[0])
			}
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})

	return rows
}

func parseListTable(table *goquery.Selection) []ingest.Row {
	trs := table.Find(listRowSelector)
	if trs.Length() == 0 {
		trs = table.Find("tr")
	}

	var rows []ingest.Row
	trs.Each(func(_ int, tr *goquery.Selection) {
		row := ingest.Row{}
		tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			heading, ok := cell.Attr(headingAttr)
			if !ok || heading == "" {
				return
			}

			value := strings.Join(strings.Fields(listCellText(heading, cell)), " ")

			if heading == headingGuest {
				name, badge := normalize.StripGenius(value)
				_, inCell := normalize.StripGenius(cell.Text())
				value = name
				row[ingest.LabelGenius] = ingest.Bool(badge || inCell)
			}
			if value != "" {
				row[heading] = ingest.Text(value)
			}
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})

	return rows
}

func listCellText(heading string, cell *goquery.Selection) string {
	if heading == headingGuest || heading == headingBookingID {
		if span := cell.Find("a span").First(); span.Length() > 0 {
			return span.Text()
		}
	}
	if span := cell.Find("span").First(); span.Length() > 0 {
		return span.Text()
	}
	return cell.Text()
}

// textLines returns the trimmed, non-empty text nodes under s in document order.
func textLines(s *goquery.Selection) []string {
	var lines []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				if t := strings.TrimSpace(c.Text()); t != "" {
					lines = append(lines, t)
				}
				return
			}
			walk(c)
		})
	}
	walk(s)
	return lines
}
