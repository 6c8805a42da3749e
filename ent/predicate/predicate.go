// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentMessage is the predicate function for agentmessage builders.
type AgentMessage func(*sql.Selector)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// EventLog is the predicate function for eventlog builders.
type EventLog func(*sql.Selector)

// PMDecisionLog is the predicate function for pmdecisionlog builders.
type PMDecisionLog func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskNote is the predicate function for tasknote builders.
type TaskNote func(*sql.Selector)
