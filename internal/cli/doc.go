// Package cli implements tinctl, the offline command-line front end of the
// validator registry. It needs neither a server nor a database.
//
//	tinctl validate --country DE 26954371827
//	tinctl batch people.csv --format json
//	tinctl --locale-codes comuni.yaml validate -c IT DMLPRY77D15H501F
package cli
