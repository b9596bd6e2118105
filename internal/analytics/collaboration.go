package analytics

import (
	"sort"
	"strings"

	"unidash-be/internal/models"
)

// Communication channels.
const (
	ChannelEmail     = "email"
	ChannelDocuments = "documents"
	ChannelMeetings  = "meetings"
)

var channelKeys = []string{ChannelEmail, ChannelDocuments, ChannelMeetings}

const (
	weightSharedDocument = 10
	weightActiveProject  = 5
	weightCollaborator   = 3
)

// AnalyzeCollaboration derives team, project and communication metrics from the document collection.
// Metrics cover the whole collection, not only the requested period.
func AnalyzeCollaboration(policy Policy, taxonomy Taxonomy, docs []models.Document) models.CollaborationSnapshot {
	snap := models.CollaborationSnapshot{
		TopCollaborators: []models.Collaborator{},
		ProjectStatus:    map[string]string{},
	}

	members := map[string]struct{}{}
	appearances := map[string]int{}
	for i, doc := range docs {
		if author := strings.TrimSpace(doc.Author); author != "" {
			members[author] = struct{}{}
		}

		seen := map[string]struct{}{}
		for _, c := range doc.Collaborators {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			members[c] = struct{}{}
			if _, dup := seen[c]; !dup {
				seen[c] = struct{}{}
				appearances[c]++
			}
		}
		if len(seen) > 0 {
			snap.SharedDocuments++
		}

		if doc.Status != "draft" && doc.Status != "archived" {
			snap.ActiveProjects++
		}
		if i < policy.ProjectStatusLimit && doc.Title != "" {
			snap.ProjectStatus[doc.Title] = taxonomy.StatusLabel(doc.Status)
		}
	}
	snap.TeamMembers = len(members)

	ranked := make([]models.Collaborator, 0, len(appearances))
	for name, n := range appearances {
		hours := n * policy.HoursPerProject
		snap.CollaborationHours += hours
		ranked = append(ranked, models.Collaborator{Name: name, Projects: n, Hours: hours})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Projects == ranked[j].Projects {
			return ranked[i].Name < ranked[j].Name
		}
		return ranked[i].Projects > ranked[j].Projects
	})
	if len(ranked) > policy.TopCollaboratorsLimit {
		ranked = ranked[:policy.TopCollaboratorsLimit]
	}
	snap.TopCollaborators = ranked

	snap.CommunicationChannels = Renormalize(channelKeys, map[string]float64{
		ChannelEmail:     float64(len(appearances) * weightCollaborator),
		ChannelDocuments: float64(snap.SharedDocuments * weightSharedDocument),
		ChannelMeetings:  float64(snap.ActiveProjects * weightActiveProject),
	})
	return snap
}
