// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/foremanhq/foreman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// WorkspaceDir applies equality check predicate on the "workspace_dir" field. It's identical to WorkspaceDirEQ.
func WorkspaceDir(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWorkspaceDir, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// WorkspaceDirEQ applies the EQ predicate on the "workspace_dir" field.
func WorkspaceDirEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWorkspaceDir, v))
}

// WorkspaceDirNEQ applies the NEQ predicate on the "workspace_dir" field.
func WorkspaceDirNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldWorkspaceDir, v))
}

// WorkspaceDirIn applies the In predicate on the "workspace_dir" field.
func WorkspaceDirIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldWorkspaceDir, vs...))
}

// WorkspaceDirNotIn applies the NotIn predicate on the "workspace_dir" field.
func WorkspaceDirNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldWorkspaceDir, vs...))
}

// WorkspaceDirGT applies the GT predicate on the "workspace_dir" field.
func WorkspaceDirGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldWorkspaceDir, v))
}

// WorkspaceDirGTE applies the GTE predicate on the "workspace_dir" field.
func WorkspaceDirGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldWorkspaceDir, v))
}

// WorkspaceDirLT applies the LT predicate on the "workspace_dir" field.
func WorkspaceDirLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldWorkspaceDir, v))
}

// WorkspaceDirLTE applies the LTE predicate on the "workspace_dir" field.
func WorkspaceDirLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldWorkspaceDir, v))
}

// WorkspaceDirContains applies the Contains predicate on the "workspace_dir" field.
func WorkspaceDirContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldWorkspaceDir, v))
}

// WorkspaceDirHasPrefix applies the HasPrefix predicate on the "workspace_dir" field.
func WorkspaceDirHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldWorkspaceDir, v))
}

// WorkspaceDirHasSuffix applies the HasSuffix predicate on the "workspace_dir" field.
func WorkspaceDirHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldWorkspaceDir, v))
}

// WorkspaceDirIsNil applies the IsNil predicate on the "workspace_dir" field.
func WorkspaceDirIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldWorkspaceDir))
}

// WorkspaceDirNotNil applies the NotNil predicate on the "workspace_dir" field.
func WorkspaceDirNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldWorkspaceDir))
}

// WorkspaceDirEqualFold applies the EqualFold predicate on the "workspace_dir" field.
func WorkspaceDirEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldWorkspaceDir, v))
}

// WorkspaceDirContainsFold applies the ContainsFold predicate on the "workspace_dir" field.
func WorkspaceDirContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldWorkspaceDir, v))
}

// SettingsIsNil applies the IsNil predicate on the "settings" field.
func SettingsIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldSettings))
}

// SettingsNotNil applies the NotNil predicate on the "settings" field.
func SettingsNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldSettings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
