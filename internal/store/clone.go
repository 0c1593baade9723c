package store

import (
	"github.com/jonathan/ae-qualify/internal/types"
)

// cloneSlice copies a slice, preserving nil vs empty so snapshots
// serialize the same way the source state does.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// cloneState produces a deep copy of the state tree. Snapshots handed to
// callers and subscribers must not alias the slices the store owns.
func cloneState(s types.DashboardState) types.DashboardState {
	out := s
	out.Projects = cloneSlice(s.Projects)
	out.UploadedAssets = cloneAssets(s.UploadedAssets)
	out.FormData.SF330PartI = cloneSF330PartI(s.FormData.SF330PartI)
	out.FormData.SF330PartII = cloneSF330PartII(s.FormData.SF330PartII)
	out.FormData.SF254 = cloneSF254(s.FormData.SF254)
	out.FormData.SF255 = cloneSF255(s.FormData.SF255)
	return out
}

func cloneAssets(assets []types.UploadedAsset) []types.UploadedAsset {
	if assets == nil {
		return nil
	}
	out := make([]types.UploadedAsset, len(assets))
	for i, a := range assets {
		out[i] = a
		if a.ExtractedData != nil {
			m := make(map[string]any, len(a.ExtractedData))
			for k, v := range a.ExtractedData {
				m[k] = v
			}
			out[i].ExtractedData = m
		}
	}
	return out
}

func cloneSF330PartI(d types.SF330PartIData) types.SF330PartIData {
	out := d
	if d.KeyPersonnel != nil {
		out.KeyPersonnel = make([]types.KeyPersonnel, len(d.KeyPersonnel))
		for i, kp := range d.KeyPersonnel {
			out.KeyPersonnel[i] = kp
			out.KeyPersonnel[i].Certifications = cloneSlice(kp.Certifications)
			out.KeyPersonnel[i].RelevantProjects = cloneSlice(kp.RelevantProjects)
		}
	}
	out.ExampleProjects = cloneSlice(d.ExampleProjects)
	return out
}

func cloneSF330PartII(d types.SF330PartIIData) types.SF330PartIIData {
	out := d
	out.BranchOffices = cloneSlice(d.BranchOffices)
	out.EmployeesByDiscipline = cloneSlice(d.EmployeesByDiscipline)
	out.FirmExperienceProfile = cloneSlice(d.FirmExperienceProfile)
	return out
}

func cloneSF254(d types.SF254Data) types.SF254Data {
	out := d
	out.PersonnelByDiscipline = cloneSlice(d.PersonnelByDiscipline)
	out.ServiceCapabilities = cloneSlice(d.ServiceCapabilities)
	out.GeographicExperience = cloneSlice(d.GeographicExperience)
	return out
}

func cloneSF255(d types.SF255Data) types.SF255Data {
	out := d
	out.JointVenturePartners = cloneSlice(d.JointVenturePartners)
	out.PersonnelByDiscipline = cloneSlice(d.PersonnelByDiscipline)
	out.OutsideConsultants = cloneSlice(d.OutsideConsultants)
	if d.ProjectTeamResumes != nil {
		out.ProjectTeamResumes = make([]types.ProjectTeamMember, len(d.ProjectTeamResumes))
		for i, m := range d.ProjectTeamResumes {
			out.ProjectTeamResumes[i] = m
			out.ProjectTeamResumes[i].Certifications = cloneSlice(m.Certifications)
		}
	}
	out.RelevantProjects = cloneSlice(d.RelevantProjects)
	return out
}
