// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentMessagesColumns holds the columns for the "agent_messages" table.
	AgentMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "from_agent", Type: field.TypeString},
		{Name: "to_agent", Type: field.TypeString},
		{Name: "graph_task_id", Type: field.TypeString, Nullable: true},
		{Name: "message_type", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// AgentMessagesTable holds the schema information for the "agent_messages" table.
	AgentMessagesTable = &schema.Table{
		Name:       "agent_messages",
		Columns:    AgentMessagesColumns,
		PrimaryKey: []*schema.Column{AgentMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_messages_pipeline_runs_agent_messages",
				Columns:    []*schema.Column{AgentMessagesColumns[7]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentmessage_run_id_to_agent",
				Unique:  false,
				Columns: []*schema.Column{AgentMessagesColumns[7], AgentMessagesColumns[2]},
			},
		},
	}
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "agent_run_id", Type: field.TypeString, Unique: true},
		{Name: "graph_task_id", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "input", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_runs_pipeline_runs_agent_runs",
				Columns:    []*schema.Column{AgentRunsColumns[17]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_run_id_graph_task_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[17], AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_provider",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[4]},
			},
		},
	}
	// EventLogsColumns holds the columns for the "event_logs" table.
	EventLogsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// EventLogsTable holds the schema information for the "event_logs" table.
	EventLogsTable = &schema.Table{
		Name:       "event_logs",
		Columns:    EventLogsColumns,
		PrimaryKey: []*schema.Column{EventLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "event_logs_pipeline_runs_event_logs",
				Columns:    []*schema.Column{EventLogsColumns[6]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "eventlog_run_id_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventLogsColumns[6], EventLogsColumns[2]},
			},
			{
				Name:    "eventlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventLogsColumns[5]},
			},
		},
	}
	// PmDecisionLogsColumns holds the columns for the "pm_decision_logs" table.
	PmDecisionLogsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "round", Type: field.TypeInt},
		{Name: "trigger_kind", Type: field.TypeString},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "actions_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "raw_response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "parse_failed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// PmDecisionLogsTable holds the schema information for the "pm_decision_logs" table.
	PmDecisionLogsTable = &schema.Table{
		Name:       "pm_decision_logs",
		Columns:    PmDecisionLogsColumns,
		PrimaryKey: []*schema.Column{PmDecisionLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pm_decision_logs_pipeline_runs_pm_decisions",
				Columns:    []*schema.Column{PmDecisionLogsColumns[8]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pmdecisionlog_run_id_round",
				Unique:  true,
				Columns: []*schema.Column{PmDecisionLogsColumns[8], PmDecisionLogsColumns[1]},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "request", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "awaiting_plan", "completed", "failed", "aborted"}, Default: "running"},
		{Name: "graph_json", Type: field.TypeString, Size: 2147483647},
		{Name: "decision_count", Type: field.TypeInt, Default: 0},
		{Name: "running_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "current_step", Type: field.TypeInt, Nullable: true},
		{Name: "steps_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[3]},
			},
			{
				Name:    "pipelinerun_project_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[1]},
			},
			{
				Name:    "pipelinerun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[3], PipelineRunsColumns[11]},
			},
			{
				Name:    "pipelinerun_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[3], PipelineRunsColumns[10]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "workspace_dir", Type: field.TypeString, Nullable: true},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "graph_task_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "ready", "running", "blocked", "done", "failed", "skipped", "cancelled"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "decision_round", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_pipeline_runs_tasks",
				Columns:    []*schema.Column{TasksColumns[15]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_run_id_graph_task_id",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[15], TasksColumns[1]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
		},
	}
	// TaskNotesColumns holds the columns for the "task_notes" table.
	TaskNotesColumns = []*schema.Column{
		{Name: "note_id", Type: field.TypeString, Unique: true},
		{Name: "graph_task_id", Type: field.TypeString},
		{Name: "author", Type: field.TypeString},
		{Name: "note", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// TaskNotesTable holds the schema information for the "task_notes" table.
	TaskNotesTable = &schema.Table{
		Name:       "task_notes",
		Columns:    TaskNotesColumns,
		PrimaryKey: []*schema.Column{TaskNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_notes_pipeline_runs_task_notes",
				Columns:    []*schema.Column{TaskNotesColumns[5]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tasknote_run_id_graph_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskNotesColumns[5], TaskNotesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentMessagesTable,
		AgentRunsTable,
		EventLogsTable,
		PmDecisionLogsTable,
		PipelineRunsTable,
		ProjectsTable,
		TasksTable,
		TaskNotesTable,
	}
)

func init() {
	AgentMessagesTable.ForeignKeys[0].RefTable = PipelineRunsTable
	AgentRunsTable.ForeignKeys[0].RefTable = PipelineRunsTable
	EventLogsTable.ForeignKeys[0].RefTable = PipelineRunsTable
	PmDecisionLogsTable.ForeignKeys[0].RefTable = PipelineRunsTable
	TasksTable.ForeignKeys[0].RefTable = PipelineRunsTable
	TaskNotesTable.ForeignKeys[0].RefTable = PipelineRunsTable
}
