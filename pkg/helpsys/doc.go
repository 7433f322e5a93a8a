// Package helpsys extracts help entries from Makefile comments and renders them as a grouped listing.
// Help lines look like "## <group>:<command>:<description>". Everything else in the scanned files is ignored,
// so the same comments can live next to any make syntax.
package helpsys
