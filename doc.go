// Copyright 2026 twystd. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package flightdeals keeps a flight deals spreadsheet up to date with IATA city codes and the cheapest
return fares from the Amadeus flight search API.

flight-deals can be used from the command line but is really intended to be run from a cron job against
a Sheety (or Google Sheets) worksheet with City, IATA Code and Lowest Price columns.

flight-deals supports the following commands:

  - update-codes, to fill in the missing IATA codes (the default)
  - find-fares, to find the cheapest fare to each destination and optionally record cheaper fares
  - get, to download the destinations sheet as a TSV file
  - authorise, to authorise application access to a Google Sheets worksheet
  - version, to display the current version
*/
package flightdeals
