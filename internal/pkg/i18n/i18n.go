// Package i18n translates report labels and formats amounts for the
// language a request asks for.
package i18n

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

var thaiMessages = map[string]string{
	// Filters
	"From":            "จากวันที่",
	"To":              "ถึงวันที่",
	"Currency":        "สกุลเงิน",
	"Employee":        "พนักงาน",
	"Company":         "บริษัท",
	"Document Status": "สถานะเอกสาร",

	// Columns
	"Salary Slip ID":  "เลขที่สลิปเงินเดือน",
	"Employee Name":   "ชื่อพนักงาน",
	"Date of Joining": "วันที่เริ่มงาน",
	"Department":      "แผนก",
	"Designation":     "ตำแหน่ง",
	"Start Date":      "วันที่เริ่มต้น",
	"End Date":        "วันที่สิ้นสุด",
	"Earn Type":       "ประเภทรายได้",
	"Gross Pay":       "รายได้รวม",
	"Deduct Type":     "ประเภทรายการหัก",
	"Total Deduction": "รายการหักรวม",
	"Net Pay":         "รายได้สุทธิ",

	// Payout card
	"Salary":                            "เงินเดือน",
	"Social Security":                   "ประกันสังคม",
	"Total Disbursement":                "รวมยอดเบิก",
	"Payroll Bank Account":              "ธนาคารไทยพานิชย์เพื่อเงินเดือนพนักงาน",
	"Social Security Office":            "สำนักงานประกันสังคม",
	"Revenue Department":                "กรมสรรพากร",
	"Revenue Department (Student Loan)": "กรมสรรพากร 2 เพื่อรับชำระเงินคืนกยศ.",
	"Total Payout":                      "รวมยอดจ่าย",
}

type Catalog struct {
	builder *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
}

// New builds the message catalog. fallback is the language used when a
// request names none of the supported ones.
func New(fallback string) (*Catalog, error) {
	fallbackTag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback language %q: %w", fallback, err)
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range thaiMessages {
		if err := builder.SetString(language.Thai, key, msg); err != nil {
			return nil, fmt.Errorf("failed to register message %q: %w", key, err)
		}
	}

	// The matcher falls back to the first tag
	tags := []language.Tag{language.English, language.Thai}
	base, _ := fallbackTag.Base()
	if thaiBase, _ := language.Thai.Base(); base == thaiBase {
		tags = []language.Tag{language.Thai, language.English}
	}

	return &Catalog{
		builder: builder,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Locale resolves an Accept-Language header value to a supported language.
func (c *Catalog) Locale(acceptLanguage string) Locale {
	_, idx := language.MatchStrings(c.matcher, acceptLanguage)
	tag := c.tags[idx]
	printer := message.NewPrinter(tag, message.Catalog(c.builder))

	separator := strings.Trim(printer.Sprint(number.Decimal(1.5, number.Scale(1))), "15")
	if separator == "" {
		separator = "."
	}

	return Locale{
		tag:       tag,
		printer:   printer,
		separator: separator,
	}
}

type Locale struct {
	tag       language.Tag
	printer   *message.Printer
	separator string
}

func (l Locale) Tag() language.Tag {
	return l.tag
}

// T translates a label. Unknown labels come back unchanged.
func (l Locale) T(msg string) string {
	return l.printer.Sprintf(msg)
}

// maxGroupedAmount bounds amounts whose cents fit in an int64.
var maxGroupedAmount = decimal.New(1, 16)

// Amount formats a money value half away from zero to two decimals with
// the locale's digit grouping. Rounding happens on the decimal value, never
// on a float.
func (l Locale) Amount(v decimal.Decimal) string {
	rounded := v.Round(2)
	if rounded.Abs().GreaterThanOrEqual(maxGroupedAmount) {
		return rounded.StringFixed(2)
	}

	cents := rounded.Shift(2).IntPart()
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := l.printer.Sprint(number.Decimal(cents / 100))
	return fmt.Sprintf("%s%s%s%02d", sign, whole, l.separator, cents%100)
}
