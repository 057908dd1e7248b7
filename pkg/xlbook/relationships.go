package xlbook

import (
	"strconv"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/models"
)

// relationshipSet is an ordered list of relationships. Ids are not checked
// for uniqueness on insert; nextID always returns an unused one.
type relationshipSet []models.Relationship

func (s relationshipSet) find(id string) (models.Relationship, bool) {
	for _, r := range s {
		if r.ID == id {
			return r, true
		}
	}
	return models.Relationship{}, false
}

func (s relationshipSet) indexOfTarget(target string) int {
	for i, r := range s {
		if r.Target == target {
			return i
		}
	}
	return -1
}

func (s relationshipSet) hasType(t models.RelationshipType) bool {
	for _, r := range s {
		if r.Type == t {
			return true
		}
	}
	return false
}

func (s relationshipSet) nextID() string {
	for i := 1; ; i++ {
		id := "rId" + strconv.Itoa(i)
		if _, ok := s.find(id); !ok {
			return id
		}
	}
}

func (s relationshipSet) clone() relationshipSet {
	if s == nil {
		return nil
	}
	out := make(relationshipSet, len(s))
	copy(out, s)
	return out
}

// CreateRelationship appends a workbook relationship. The id is used as given.
func (wb *Workbook) CreateRelationship(id, target string, t models.RelationshipType) models.Relationship {
	r := models.Relationship{ID: id, Target: target, Type: t}
	wb.d.relationships = append(wb.d.relationships, r)
	wb.log.Debug().Str("id", id).Str("target", target).Stringer("type", t).Msg("relationship created")
	return r
}

// Relationship returns the workbook relationship with the given id.
func (wb *Workbook) Relationship(id string) (models.Relationship, error) {
	r, ok := wb.d.relationships.find(id)
	if !ok {
		return models.Relationship{}, opError("get relationship", id, ErrNotFound)
	}
	return r, nil
}

// Relationships returns the workbook relationships in creation order.
func (wb *Workbook) Relationships() []models.Relationship {
	return wb.d.relationships.clone()
}

// NextRelationshipID returns the first of rId1, rId2, ... not in use.
func (wb *Workbook) NextRelationshipID() string {
	return wb.d.relationships.nextID()
}

// CreateRootRelationship appends a package-root relationship.
func (wb *Workbook) CreateRootRelationship(id, target string, t models.RelationshipType) models.Relationship {
	r := models.Relationship{ID: id, Target: target, Type: t}
	wb.d.rootRelationships = append(wb.d.rootRelationships, r)
	return r
}

// RootRelationships returns the package-root relationships. An empty set is
// filled once with core properties, extended properties and the workbook.
func (wb *Workbook) RootRelationships() []models.Relationship {
	if len(wb.d.rootRelationships) == 0 {
		wb.d.rootRelationships = relationshipSet{
			{ID: "rId1", Target: "docProps/core.xml", Type: models.RelationshipCoreProperties},
			{ID: "rId2", Target: "docProps/app.xml", Type: models.RelationshipExtendedProperties},
			{ID: "rId3", Target: "xl/workbook.xml", Type: models.RelationshipOfficeDocument},
		}
	}
	return wb.d.rootRelationships.clone()
}
