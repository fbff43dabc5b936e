/*
Package regkey defines the string addressing scheme used by the register.

A key is one to three dot-separated components. The three-part form
addresses a member of a named instance, e.g. `Storage.Great_Lake.EOL`.
The two-part form addresses an instance itself, e.g. `Storage.Great_Lake`,
or an entry in one of the reserved namespaces `function`, `collection`
and `file`, e.g. `function.Storage_volume`.

This package centralizes key construction and component validation so that
every externally supplied class, instance or field name is checked before
it becomes part of an address.
*/
package regkey
