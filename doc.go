// Copyright (c) 2026 The oldsdv authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package oldsdv provides a layered settings store for benchmark and
deployment tooling.

It defines a type, [Settings], which accumulates named values from
multiple sources: single definition files, ordered directories of
definition files, plain maps and environment variables. Later sources
take precedence over earlier ones for the same name. Setting names are
case-insensitive on input and normalized to upper case.

String values may embed #PARAM placeholders that reference other
settings, optionally drilling into sequences and mappings:

	#PARAM(TRAFFICGEN)
	#PARAM(PORTS[0])
	#PARAM(VSWITCH['ovs']['bridge'])

Placeholders are expanded on every [Settings.Get], never at load time,
so the order in which settings are defined does not matter as long as
the referenced setting exists by the time the referencing one is read.
A placeholder whose target is missing is left verbatim in the returned
value; the target may well be produced later at runtime and re-read
afterwards.

Each source is a [Loader] which loads settings as a map[string]any.
Loaders that also implement [Watcher] can be watched with
[Settings.Watch] to pick up changes to their source.

Settings instances are not safe for concurrent mutation: loading and
setting are expected to happen on a single goroutine, typically during
program start-up, with reads dominating afterwards.
*/
package oldsdv
