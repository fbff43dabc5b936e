/*
Package hcldriver reads object definitions from HCL text and feeds them to
the object factory.

Each configuration section names a class and an instance and carries a flat
map of field literals:

	object "Storage" "Great_Lake" {
	  EOL     = 123.4
	  Spill   = "spillway"
	  Sources = ["mersey", "forth"]
	}

Attribute values are evaluated as HCL literals and rendered to the string
forms the register's Reset pass understands (numbers and booleans to their
lexical form, lists to bracket-delimited sequences). Every discovered block
becomes one Factory.Make call; failures are wrapped with the originating
file and instance name. The caller is expected to run Registry.Reset once
after all files have been loaded.
*/
package hcldriver
