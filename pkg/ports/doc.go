/*
Package ports defines the interfaces between the offhook core and its collaborators.

These interfaces decouple driving loops (console runner, tests, embedding hosts)
from the concrete machine implementation.

# Key Interfaces

  - StateMachine: the read/apply contract of a phone state machine.
  - DefinitionLoader: resolves a rule table Definition from some source.
*/
package ports
