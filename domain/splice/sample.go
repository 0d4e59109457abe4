package splice

import "fmt"

// Built-in demo assignments so the service produces a realistic sheet with
// no input at all. Not a business rule — purely sample data, kept out of
// the Build path.

var sampleStreets = [...]string{
	"101 E Coats Ave",
	"103 E Coats Ave",
	"105 E Coats Ave",
	"107 E Coats Ave",
	"109 E Coats Ave",
	"111 E Coats Ave",
	"113 E Coats Ave",
	"115 E Coats Ave",
	"117 E Coats Ave",
	"119 E Coats Ave",
	"121 E Coats Ave",
	"123 E Coats Ave",
	"125 E Coats Ave",
	"127 E Coats Ave",
}

// SampleSheet is the deterministic sheet number for sample (and sheetless
// uploaded) record i. Deterministic on purpose: repeated runs must produce
// byte-identical sheets.
func SampleSheet(i int) int {
	return i/3 + 10
}

// SampleAddresses returns the fixed 14-record demo assignment list.
func SampleAddresses() []AddressRecord {
	records := make([]AddressRecord, 0, len(sampleStreets))
	for i, street := range sampleStreets {
		sheet := SampleSheet(i)
		record := AddressRecord{
			MST:     fmt.Sprintf("MST_F%dECOATSAVE.21082%d", 1000+i, i%10),
			Address: street,
			Sheet:   &sheet,
		}
		switch i {
		case 0:
			record.Terminal = "T1"
		case 1:
			record.Terminal = "T2"
		}
		records = append(records, record)
	}
	return records
}
