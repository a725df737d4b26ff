// Package shared holds code used by several internal packages that does not
// belong to any one stage of the pipeline.
//
// The testutil subpackage provides:
//
//   - BufferedSlogHandler and NewTestLogger for asserting on log output
//   - WriteWorkbook, WriteCorruptWorkbook and ReadWorkbook for building and
//     inspecting option-chain spreadsheets with excelize
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, handler := testutil.NewTestLogger(t)
//	    testutil.WriteWorkbook(t, path, testutil.DefaultChainHeader,
//	        testutil.ChainRow("Call", 100, 50, 2.0))
//	    ...
//	    testutil.AssertNoErrors(t, handler)
//	}
package shared
