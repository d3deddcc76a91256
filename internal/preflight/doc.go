// Package preflight provides readiness checks for the directories an
// organize run touches.
//
// These checks run in two contexts:
//   - The CLI "aniorg check" command renders every Result as a table.
//   - The workflow runner calls CheckSameFilesystem before a link-mode run
//     and warns when hard links cannot succeed.
package preflight
