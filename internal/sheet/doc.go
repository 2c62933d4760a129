// Package sheet reads spreadsheet workbooks into fully materialized,
// in-memory tables of typed cells.
//
// A workbook is opened with excelize, every sheet is read with raw cell
// values and per-cell types, and the file is closed before Open returns.
// Callers only ever see Workbook, Sheet and Cell values.
package sheet
