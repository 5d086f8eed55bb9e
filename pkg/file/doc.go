// Package file holds the file-name helpers shared by the upload flows.
//
// The helpers operate on names only; file contents never reach this service.
//
//	file.ValidFileName("EMI40_Taxable_V4.csv") // true
//	file.Extension("EMI40_Taxable_V4.csv")     // "csv"
//	file.BaseName(`C:\fakepath\data.csv`)      // "data.csv"
//	file.ValidateSize(size, 100<<20)           // ErrFileTooLarge when size > limit
//
// Extension comparison is case-sensitive: "DATA.CSV" has extension "CSV".
package file
