// Command firecatalog turns the fire safety costing workbook into the JSON
// catalog read by the quoting front end.
//
// The extract command reads the equipment list from the workbook, prices
// every name against the keyword price table, and writes equipment.json,
// categories.json and formulas.json. Optional Excel and PDF price lists can
// be written alongside. The inspect and scan commands help whoever maintains
// the configuration find sheets, columns and rates in a new workbook.
package main
