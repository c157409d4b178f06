// Package drive is the remote file source: it walks a Drive folder
// tree for spreadsheet-like files and fetches their raw sheet grids.
//
// Hosted spreadsheets are read tab-by-tab through the Sheets values
// API with a bounded A1 range. Binary workbooks and CSVs are streamed
// to a scratch file, decoded locally and the scratch removed on every
// exit path.
//
// All Google calls go through a narrow apiClient surface so tests can
// substitute a fake without touching the network.
package drive
