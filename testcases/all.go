package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in exported test case names.
var All = map[string][]TestCase{
	"basic":  basicCases,
	"saddle": saddleCases,
	"field":  fieldCases,
}
