// Package validator provides the issue and result types used when checking
// desktop entry files, plus a [Reporter] that renders them as text or JSON.
//
//	result := &validator.Result{Source: "myapp.desktop"}
//	if name == "" {
//		result.AddError("Name", 5, "is required", nil)
//	}
//	validator.NewReporter(os.Stdout, validator.FormatText).Report(result)
package validator
