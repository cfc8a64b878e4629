// Package pagecontext defines the page-context data model shared by the
// bridge client and the host-facing contract: the context record itself,
// classified change events, and the bounded change history.
//
// All host-supplied data is parsed into the strict Context record at the
// boundary; nothing loosely typed travels further inward.
package pagecontext
