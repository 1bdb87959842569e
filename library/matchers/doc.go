// Package matchers provides collection and attribute matchers for the library domain model.
//
// Every matcher returns a Result instead of failing a test directly, so the same matchers can be used
// in tests (see testutil/helper for testify bridges) and in ordinary code.
//
// Collection matchers work on any slice of comparable elements:
//
//   - StartWith / EndWith: order-sensitive prefix and suffix checks
//   - ContainExactly: same elements in the same order
//   - MatchArray: same elements in any order, respecting multiplicity
//   - Include: every expected element is present somewhere
//   - BeEmpty / HaveLength: size checks
//   - AllSatisfy: every element satisfies a predicate (any element type)
//
// Attribute matchers compare a Book field by field against a BookAttributes value that is assembled
// with a fluent builder. Only the attributes that were set take part in the comparison:
//
//	attrs := matchers.Attributes().Title("Ruby-101").Author("Alice").Finalize()
//	result := matchers.HaveAttributes(book, attrs)
package matchers
