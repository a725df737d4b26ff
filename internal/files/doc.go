// Package files provides file system discovery for the option pair
// aggregator.
//
// Scanner walks each configured base directory and yields one Folder per
// immediate subdirectory, tagged with the first six characters of the
// folder name. Discovery lists the .xlsx workbooks inside a folder in name
// order so that repeated runs visit inputs in the same sequence.
//
// Example usage:
//
//	scanner := files.NewScanner(logger)
//	folders, err := scanner.Folders("data/2025Q1")
//	if err != nil {
//	    // base directory missing: already logged, skip it
//	}
//	for folder := range folders {
//	    workbooks, _ := files.NewDiscovery("").FindExcelFiles(folder.Path)
//	    ...
//	}
package files
